package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// FacilityRow is one row of the fan-out join from users to certificates,
// trainings and assistance tools. User columns repeat on every row; the joined
// columns are nil when the corresponding LEFT JOIN found nothing.
type FacilityRow struct {
	ID             uint
	Nama           string
	Email          string
	NIK            string `gorm:"column:NIK"`
	Alamat         string
	Telepon        string
	JenisKelamin   string
	KepalaKeluarga bool
	TempatLahir    string
	TanggalLahir   time.Time
	JenisUsaha     string

	SertifikatID   *uint `gorm:"column:id_sertifikat"`
	NamaSertifikat *string
	NoSertifikat   *string
	TanggalTerbit  *time.Time
	Kadaluarsa     *time.Time
	Keterangan     *string

	PelatihanID        *uint `gorm:"column:id_pelatihan"`
	NamaPelatihan      *string
	Penyelenggara      *string
	TanggalPelaksanaan *time.Time
	Tempat             *string

	BantuanID      *uint `gorm:"column:id_bantuan"`
	NamaBantuan    *string
	Koordinator    *string
	SumberAnggaran *string
	TotalAnggaran  *int64
	TahunPemberian *int

	AlatID    *uint `gorm:"column:id_alat"`
	NamaItem  *string
	Harga     *int64
	Deskripsi *string
}

const facilityRowsQuery = `
SELECT
  users.id, users.nama, users.email, users.NIK, users.alamat, users.telepon,
  users.jenis_kelamin, users.kepala_keluarga, users.tempat_lahir, users.tanggal_lahir, users.jenis_usaha,
  sertificates.id AS id_sertifikat, sertificates.nama AS nama_sertifikat, user_sertificates.no_sertifikat,
  sertificates.tanggal_terbit, sertificates.kadaluarsa, sertificates.keterangan,
  trainings.id AS id_pelatihan, trainings.nama AS nama_pelatihan, trainings.penyelenggara,
  trainings.tanggal_pelaksanaan, trainings.tempat,
  assistance.id AS id_bantuan, assistance.nama AS nama_bantuan, assistance.koordinator,
  assistance.sumber_anggaran, assistance.total_anggaran, assistance.tahun_pemberian,
  tools.id AS id_alat, tools.nama_item, tools.harga, tools.deskripsi
FROM users
LEFT JOIN user_sertificates ON users.id = user_sertificates.user_id
LEFT JOIN sertificates ON user_sertificates.sertificates_id = sertificates.id
LEFT JOIN user_trainings ON users.id = user_trainings.user_id
LEFT JOIN trainings ON user_trainings.trainings_id = trainings.id
LEFT JOIN assistance ON users.id = assistance.user_id
LEFT JOIN assistance_tools ON assistance.id = assistance_tools.assistance_id
LEFT JOIN tools ON assistance_tools.tools_id = tools.id
WHERE users.id = ?`

// FacilityRepository reads the flat facility join for a user.
type FacilityRepository interface {
	FacilityRowsByUserID(ctx context.Context, userID uint) ([]FacilityRow, error)
}

type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository builds a GORM-backed facility repository.
func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) FacilityRowsByUserID(ctx context.Context, userID uint) ([]FacilityRow, error) {
	var rows []FacilityRow
	if err := r.db.WithContext(ctx).Raw(facilityRowsQuery, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
