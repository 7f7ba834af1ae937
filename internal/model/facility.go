package model

import "time"

// Sertificate is a certification issued to users. The table name keeps the
// original schema's spelling.
type Sertificate struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Nama          string    `json:"nama" gorm:"size:100;not null"`
	TanggalTerbit time.Time `json:"tanggal_terbit" gorm:"type:date"`
	Kadaluarsa    time.Time `json:"kadaluarsa" gorm:"type:date"`
	Keterangan    string    `json:"keterangan" gorm:"size:255"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Sertificate) TableName() string { return "sertificates" }

// UserSertificate links a user to a certificate and carries the issued number.
type UserSertificate struct {
	UserID         uint   `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	SertificatesID uint   `json:"sertificates_id" gorm:"primaryKey;autoIncrement:false"`
	NoSertifikat   string `json:"no_sertifikat" gorm:"size:50"`

	User        User        `json:"-" gorm:"foreignKey:UserID"`
	Sertificate Sertificate `json:"-" gorm:"foreignKey:SertificatesID"`
}

func (UserSertificate) TableName() string { return "user_sertificates" }

// Training is a training event users can attend.
type Training struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Nama               string    `json:"nama" gorm:"size:100;not null"`
	Penyelenggara      string    `json:"penyelenggara" gorm:"size:100"`
	TanggalPelaksanaan time.Time `json:"tanggal_pelaksanaan" gorm:"type:date"`
	Tempat             string    `json:"tempat" gorm:"size:100"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserTraining links a user to a training.
type UserTraining struct {
	UserID      uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	TrainingsID uint `json:"trainings_id" gorm:"primaryKey;autoIncrement:false"`

	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Training Training `json:"-" gorm:"foreignKey:TrainingsID"`
}

func (UserTraining) TableName() string { return "user_trainings" }

// Assistance is an aid program granted to a single user; tools are attached
// through AssistanceTool.
type Assistance struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	Nama           string    `json:"nama" gorm:"size:100;not null"`
	Koordinator    string    `json:"koordinator" gorm:"size:100"`
	SumberAnggaran string    `json:"sumber_anggaran" gorm:"size:100"`
	TotalAnggaran  int64     `json:"total_anggaran"`
	TahunPemberian int       `json:"tahun_pemberian"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (Assistance) TableName() string { return "assistance" }

// AssistanceTool links an assistance grant to a tool item.
type AssistanceTool struct {
	AssistanceID uint `json:"assistance_id" gorm:"primaryKey;autoIncrement:false"`
	ToolsID      uint `json:"tools_id" gorm:"primaryKey;autoIncrement:false"`

	Assistance Assistance `json:"-" gorm:"foreignKey:AssistanceID"`
	Tool       Tool       `json:"-" gorm:"foreignKey:ToolsID"`
}

func (AssistanceTool) TableName() string { return "assistance_tools" }

// Tool is an equipment item handed out through assistance programs.
type Tool struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NamaItem  string    `json:"nama_item" gorm:"size:100;not null"`
	Harga     int64     `json:"harga"`
	Deskripsi string    `json:"deskripsi" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
