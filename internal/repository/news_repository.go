package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SavedNewsRow is one row of the users to saved news join. User columns repeat
// per saved article.
type SavedNewsRow struct {
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

	NewsID    uint
	Gambar    string
	Judul     string
	Subjudul  string
	Isi       string
	CreatedAt time.Time
}

const savedNewsRowsQuery = `
SELECT
  users.id, users.nama, users.email, users.NIK, users.alamat, users.telepon,
  users.jenis_kelamin, users.kepala_keluarga, users.tempat_lahir, users.tanggal_lahir, users.jenis_usaha,
  news.id AS news_id, news.gambar, news.judul, news.subjudul, news.isi, news.created_at
FROM users
INNER JOIN saved_news ON users.id = saved_news.user_id
INNER JOIN news ON saved_news.news_id = news.id
WHERE users.id = ?`

// NewsRepository reads saved news for a user.
type NewsRepository interface {
	SavedNewsRowsByUserID(ctx context.Context, userID uint) ([]SavedNewsRow, error)
}

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository builds a GORM-backed news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) SavedNewsRowsByUserID(ctx context.Context, userID uint) ([]SavedNewsRow, error) {
	var rows []SavedNewsRow
	if err := r.db.WithContext(ctx).Raw(savedNewsRowsQuery, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
