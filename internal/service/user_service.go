package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "warga/internal/errors"
	"warga/internal/model"
	"warga/internal/repository"
)

// UserProfile is the read projection of a user: identity, contact and
// demographic fields with categorical codes translated to labels. The password
// hash is never part of it.
type UserProfile struct {
	Nama           string `json:"nama"`
	Email          string `json:"email"`
	NIK            string `json:"NIK"`
	Alamat         string `json:"alamat"`
	Telepon        string `json:"telepon"`
	JenisKelamin   string `json:"jenis_kelamin"`
	KepalaKeluarga string `json:"kepala_keluarga"`
	TempatLahir    string `json:"tempat_lahir"`
	TanggalLahir   string `json:"tanggal_lahir"`
	JenisUsaha     string `json:"jenis_usaha"`
}

// SavedNewsItem is one bookmarked article in a saved news document.
type SavedNewsItem struct {
	ID        uint   `json:"id"`
	Gambar    string `json:"gambar"`
	Judul     string `json:"judul"`
	Subjudul  string `json:"subjudul"`
	Isi       string `json:"isi"`
	CreatedAt string `json:"created_at"`
}

// SavedNewsDoc is a user together with every article they bookmarked.
type SavedNewsDoc struct {
	ID uint `json:"id"`
	UserProfile
	BeritaTersimpan []SavedNewsItem `json:"berita_tersimpan"`
}

// UserService exposes directory operations over the user entity.
type UserService interface {
	ListUsers(ctx context.Context) ([]UserProfile, error)
	GetUser(ctx context.Context, id uint) (*UserProfile, error)
	GetSavedNews(ctx context.Context, id uint) (*SavedNewsDoc, error)
	GetFacilities(ctx context.Context, id uint) (*FacilitiesDoc, error)
	UpdateUser(ctx context.Context, id uint, fields map[string]interface{}) error
}

type userService struct {
	userRepo     repository.UserRepository
	newsRepo     repository.NewsRepository
	facilityRepo repository.FacilityRepository
}

// NewUserService builds a UserService over the user, news and facility repositories.
func NewUserService(userRepo repository.UserRepository, newsRepo repository.NewsRepository, facilityRepo repository.FacilityRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		newsRepo:     newsRepo,
		facilityRepo: facilityRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]UserProfile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, profileFromUser(u))
	}
	return profiles, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	profile := profileFromUser(*user)
	return &profile, nil
}

// GetSavedNews joins the user to their bookmarked articles. A user with no
// saved rows is a miss, since the join root is the user row itself.
func (s *userService) GetSavedNews(ctx context.Context, id uint) (*SavedNewsDoc, error) {
	rows, err := s.newsRepo.SavedNewsRowsByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrSavedNewsNotFound
	}

	first := rows[0]
	doc := &SavedNewsDoc{
		ID: first.ID,
		UserProfile: UserProfile{
			Nama:           first.Nama,
			Email:          first.Email,
			NIK:            first.NIK,
			Alamat:         first.Alamat,
			Telepon:        first.Telepon,
			JenisKelamin:   translateJenisKelamin(first.JenisKelamin),
			KepalaKeluarga: translateKepalaKeluarga(first.KepalaKeluarga),
			TempatLahir:    first.TempatLahir,
			TanggalLahir:   formatTanggal(first.TanggalLahir),
			JenisUsaha:     first.JenisUsaha,
		},
		BeritaTersimpan: make([]SavedNewsItem, 0, len(rows)),
	}

	for _, row := range rows {
		doc.BeritaTersimpan = append(doc.BeritaTersimpan, SavedNewsItem{
			ID:        row.NewsID,
			Gambar:    row.Gambar,
			Judul:     row.Judul,
			Subjudul:  row.Subjudul,
			Isi:       row.Isi,
			CreatedAt: formatTanggal(row.CreatedAt),
		})
	}

	return doc, nil
}

// GetFacilities reshapes the flat fan-out join into one nested document.
func (s *userService) GetFacilities(ctx context.Context, id uint) (*FacilitiesDoc, error) {
	rows, err := s.facilityRepo.FacilityRowsByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrFacilitiesNotFound
	}

	return aggregateFacilities(rows), nil
}

// UpdateUser applies a partial keyed update. Unspecified fields stay untouched;
// there is no optimistic concurrency control, last write wins.
func (s *userService) UpdateUser(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.userRepo.UpdateFields(ctx, id, fields)
}

func profileFromUser(u model.User) UserProfile {
	return UserProfile{
		Nama:           u.Nama,
		Email:          u.Email,
		NIK:            u.NIK,
		Alamat:         u.Alamat,
		Telepon:        u.Telepon,
		JenisKelamin:   translateJenisKelamin(u.JenisKelamin),
		KepalaKeluarga: translateKepalaKeluarga(u.KepalaKeluarga),
		TempatLahir:    u.TempatLahir,
		TanggalLahir:   formatTanggal(u.TanggalLahir),
		JenisUsaha:     u.JenisUsaha,
	}
}

func translateJenisKelamin(code string) string {
	if code == "L" {
		return "Laki-Laki"
	}
	return "Perempuan"
}

func translateKepalaKeluarga(isHead bool) string {
	if isHead {
		return "Kepala Keluarga"
	}
	return "Bukan Kepala Keluarga"
}

func formatTanggal(t time.Time) string {
	return t.Format("02/01/2006")
}
