package model

import "time"

// User represents a registered citizen.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Nama           string    `json:"nama" gorm:"size:100;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	NIK            string    `json:"NIK" gorm:"column:NIK;uniqueIndex;size:16;not null"`
	Alamat         string    `json:"alamat" gorm:"size:100;not null"`
	Telepon        string    `json:"telepon" gorm:"size:15;not null"`
	JenisKelamin   string    `json:"jenis_kelamin" gorm:"size:1;not null"` // "L" or "P"
	KepalaKeluarga bool      `json:"kepala_keluarga" gorm:"not null;default:false"`
	TempatLahir    string    `json:"tempat_lahir" gorm:"size:50;not null"`
	TanggalLahir   time.Time `json:"tanggal_lahir" gorm:"type:date;not null"`
	JenisUsaha     string    `json:"jenis_usaha" gorm:"size:50;not null"`
	Role           string    `json:"role,omitempty" gorm:"size:50;default:'user'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
