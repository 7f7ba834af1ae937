package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"warga/internal/config"
	"warga/internal/db"
	"warga/internal/model"
)

// Development seeder: a couple of citizens with news bookmarks and a full
// facilities fan-out (certificates, trainings, assistance with tools).
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.News{},
		&model.SavedNews{},
		&model.Sertificate{},
		&model.UserSertificate{},
		&model.Training{},
		&model.UserTraining{},
		&model.Assistance{},
		&model.AssistanceTool{},
		&model.Tool{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	var count int64
	if err := gormDB.Model(&model.User{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	if count > 0 {
		log.Printf("Database already has %d users, nothing to do", count)
		return
	}

	password, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	date := func(value string) time.Time {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			log.Fatalf("Bad seed date %q: %v", value, err)
		}
		return t
	}

	users := []model.User{
		{
			Nama:           "Budi Santoso",
			Email:          "budi@example.com",
			PasswordHash:   string(password),
			NIK:            "3201012345678901",
			Alamat:         "Jl. Pesisir No. 12",
			Telepon:        "081234567890",
			JenisKelamin:   "L",
			KepalaKeluarga: true,
			TempatLahir:    "Cirebon",
			TanggalLahir:   date("1987-04-12"),
			JenisUsaha:     "Budidaya Ikan",
		},
		{
			Nama:           "Siti Aminah",
			Email:          "siti@example.com",
			PasswordHash:   string(password),
			NIK:            "3201019876543210",
			Alamat:         "Jl. Melati No. 3",
			Telepon:        "081298765432",
			JenisKelamin:   "P",
			KepalaKeluarga: false,
			TempatLahir:    "Indramayu",
			TanggalLahir:   date("1992-11-02"),
			JenisUsaha:     "Pengolahan Hasil Laut",
		},
	}
	if err := gormDB.Create(&users).Error; err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	news := []model.News{
		{Gambar: "pelatihan-budidaya.jpg", Judul: "Pelatihan Budidaya Dibuka", Subjudul: "Pendaftaran gelombang kedua", Isi: "Dinas membuka pendaftaran pelatihan budidaya ikan air tawar."},
		{Gambar: "bantuan-alat.jpg", Judul: "Penyaluran Bantuan Alat", Subjudul: "Tahap pertama selesai", Isi: "Bantuan alat tangkap tahap pertama telah disalurkan."},
	}
	if err := gormDB.Create(&news).Error; err != nil {
		log.Fatalf("Failed to seed news: %v", err)
	}

	saved := []model.SavedNews{
		{UserID: users[0].ID, NewsID: news[0].ID},
		{UserID: users[0].ID, NewsID: news[1].ID},
	}
	if err := gormDB.Create(&saved).Error; err != nil {
		log.Fatalf("Failed to seed saved news: %v", err)
	}

	sertificates := []model.Sertificate{
		{Nama: "Sertifikat Kelayakan Pengolahan", TanggalTerbit: date("2023-02-01"), Kadaluarsa: date("2026-02-01"), Keterangan: "Berlaku tiga tahun"},
		{Nama: "Sertifikat Cara Budidaya Ikan yang Baik", TanggalTerbit: date("2024-06-15"), Kadaluarsa: date("2027-06-15"), Keterangan: ""},
	}
	if err := gormDB.Create(&sertificates).Error; err != nil {
		log.Fatalf("Failed to seed sertificates: %v", err)
	}
	userSertificates := []model.UserSertificate{
		{UserID: users[0].ID, SertificatesID: sertificates[0].ID, NoSertifikat: "SKP-2023-0042"},
		{UserID: users[0].ID, SertificatesID: sertificates[1].ID, NoSertifikat: "CBIB-2024-0117"},
	}
	if err := gormDB.Create(&userSertificates).Error; err != nil {
		log.Fatalf("Failed to seed user sertificates: %v", err)
	}

	trainings := []model.Training{
		{Nama: "Pelatihan Pengolahan Hasil Laut", Penyelenggara: "Dinas Perikanan", TanggalPelaksanaan: date("2024-03-10"), Tempat: "Balai Desa"},
	}
	if err := gormDB.Create(&trainings).Error; err != nil {
		log.Fatalf("Failed to seed trainings: %v", err)
	}
	if err := gormDB.Create(&model.UserTraining{UserID: users[0].ID, TrainingsID: trainings[0].ID}).Error; err != nil {
		log.Fatalf("Failed to seed user trainings: %v", err)
	}

	assistance := model.Assistance{
		UserID:         users[0].ID,
		Nama:           "Bantuan Alat Budidaya",
		Koordinator:    "Pak Haryono",
		SumberAnggaran: "APBD",
		TotalAnggaran:  15000000,
		TahunPemberian: 2024,
	}
	if err := gormDB.Create(&assistance).Error; err != nil {
		log.Fatalf("Failed to seed assistance: %v", err)
	}

	tools := []model.Tool{
		{NamaItem: "Pompa Air", Harga: 2500000, Deskripsi: "Pompa air 1 inch"},
		{NamaItem: "Jaring Apung", Harga: 4000000, Deskripsi: "Jaring keramba apung"},
	}
	if err := gormDB.Create(&tools).Error; err != nil {
		log.Fatalf("Failed to seed tools: %v", err)
	}
	assistanceTools := []model.AssistanceTool{
		{AssistanceID: assistance.ID, ToolsID: tools[0].ID},
		{AssistanceID: assistance.ID, ToolsID: tools[1].ID},
	}
	if err := gormDB.Create(&assistanceTools).Error; err != nil {
		log.Fatalf("Failed to seed assistance tools: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users: %d (password: rahasia123)", len(users))
	log.Printf("  - News: %d, saved news links: %d", len(news), len(saved))
	log.Printf("  - Sertificates: %d, trainings: %d, assistance: 1 with %d tools", len(sertificates), len(trainings), len(tools))
}
