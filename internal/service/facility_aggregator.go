package service

import (
	"time"

	"warga/internal/repository"
)

// SertifikatEntry is one certificate in a facilities document.
type SertifikatEntry struct {
	ID            uint       `json:"id"`
	Nama          string     `json:"nama"`
	NoSertifikat  string     `json:"no_sertifikat"`
	TanggalTerbit *time.Time `json:"tanggal_terbit"`
	Kadaluarsa    *time.Time `json:"kadaluarsa"`
	Keterangan    string     `json:"keterangan"`
}

// PelatihanEntry is one training in a facilities document.
type PelatihanEntry struct {
	ID                 uint       `json:"id"`
	Nama               string     `json:"nama"`
	Koordinator        string     `json:"koordinator"`
	TanggalPelaksanaan *time.Time `json:"tanggal_pelaksanaan"`
	Tempat             string     `json:"tempat"`
}

// AlatEntry is one tool handed out under an assistance grant.
type AlatEntry struct {
	ID    uint   `json:"id"`
	Nama  string `json:"nama"`
	Harga int64  `json:"harga"`
}

// BantuanEntry is one assistance grant with its nested tools.
type BantuanEntry struct {
	ID             uint        `json:"id"`
	Nama           string      `json:"nama"`
	Koordinator    string      `json:"koordinator"`
	SumberAnggaran string      `json:"sumber_anggaran"`
	TahunPemberian int         `json:"tahun_pemberian"`
	TotalAnggaran  int64       `json:"total_anggaran"`
	Alat           []AlatEntry `json:"alat"`
}

// FacilitiesDoc is the aggregated per-user facilities document.
type FacilitiesDoc struct {
	ID             uint              `json:"id"`
	Nama           string            `json:"nama"`
	Email          string            `json:"email"`
	NIK            string            `json:"NIK"`
	Alamat         string            `json:"alamat"`
	Telepon        string            `json:"telepon"`
	JenisKelamin   string            `json:"jenis_kelamin"`
	KepalaKeluarga bool              `json:"kepala_keluarga"`
	TempatLahir    string            `json:"tempat_lahir"`
	TanggalLahir   time.Time         `json:"tanggal_lahir"`
	JenisUsaha     string            `json:"jenis_usaha"`
	Sertifikat     []SertifikatEntry `json:"sertifikat"`
	Pelatihan      []PelatihanEntry  `json:"pelatihan"`
	Bantuan        []BantuanEntry    `json:"bantuan"`
}

// aggregateFacilities reshapes the flat fan-out join into one nested document
// in a single pass. Every level deduplicates through an id-keyed map, because
// the join repeats each certificate, training and assistance entry once per
// combination of the other joined tables. Assistance additionally accumulates
// nested tools across rows, so its map holds the partially built entries.
// Output lists preserve first-appearance order. Callers handle the zero-rows
// case; rows must not be empty here.
func aggregateFacilities(rows []repository.FacilityRow) *FacilitiesDoc {
	first := rows[0]
	doc := &FacilitiesDoc{
		ID:             first.ID,
		Nama:           first.Nama,
		Email:          first.Email,
		NIK:            first.NIK,
		Alamat:         first.Alamat,
		Telepon:        first.Telepon,
		JenisKelamin:   first.JenisKelamin,
		KepalaKeluarga: first.KepalaKeluarga,
		TempatLahir:    first.TempatLahir,
		TanggalLahir:   first.TanggalLahir,
		JenisUsaha:     first.JenisUsaha,
		Sertifikat:     []SertifikatEntry{},
		Pelatihan:      []PelatihanEntry{},
		Bantuan:        []BantuanEntry{},
	}

	seenSertifikat := make(map[uint]struct{})
	seenPelatihan := make(map[uint]struct{})
	bantuanByID := make(map[uint]*BantuanEntry)
	seenAlat := make(map[uint]map[uint]struct{})
	var bantuanOrder []uint

	for _, row := range rows {
		if row.SertifikatID != nil {
			if _, ok := seenSertifikat[*row.SertifikatID]; !ok {
				seenSertifikat[*row.SertifikatID] = struct{}{}
				doc.Sertifikat = append(doc.Sertifikat, SertifikatEntry{
					ID:            *row.SertifikatID,
					Nama:          strVal(row.NamaSertifikat),
					NoSertifikat:  strVal(row.NoSertifikat),
					TanggalTerbit: row.TanggalTerbit,
					Kadaluarsa:    row.Kadaluarsa,
					Keterangan:    strVal(row.Keterangan),
				})
			}
		}

		if row.PelatihanID != nil {
			if _, ok := seenPelatihan[*row.PelatihanID]; !ok {
				seenPelatihan[*row.PelatihanID] = struct{}{}
				doc.Pelatihan = append(doc.Pelatihan, PelatihanEntry{
					ID:                 *row.PelatihanID,
					Nama:               strVal(row.NamaPelatihan),
					Koordinator:        strVal(row.Penyelenggara),
					TanggalPelaksanaan: row.TanggalPelaksanaan,
					Tempat:             strVal(row.Tempat),
				})
			}
		}

		if row.BantuanID == nil {
			continue
		}
		entry, ok := bantuanByID[*row.BantuanID]
		if !ok {
			entry = &BantuanEntry{
				ID:             *row.BantuanID,
				Nama:           strVal(row.NamaBantuan),
				Koordinator:    strVal(row.Koordinator),
				SumberAnggaran: strVal(row.SumberAnggaran),
				TahunPemberian: intVal(row.TahunPemberian),
				TotalAnggaran:  int64Val(row.TotalAnggaran),
				Alat:           []AlatEntry{},
			}
			bantuanByID[*row.BantuanID] = entry
			seenAlat[*row.BantuanID] = make(map[uint]struct{})
			bantuanOrder = append(bantuanOrder, *row.BantuanID)
		}

		if row.AlatID != nil {
			if _, ok := seenAlat[*row.BantuanID][*row.AlatID]; !ok {
				seenAlat[*row.BantuanID][*row.AlatID] = struct{}{}
				entry.Alat = append(entry.Alat, AlatEntry{
					ID:    *row.AlatID,
					Nama:  strVal(row.NamaItem),
					Harga: int64Val(row.Harga),
				})
			}
		}
	}

	for _, id := range bantuanOrder {
		doc.Bantuan = append(doc.Bantuan, *bantuanByID[id])
	}

	return doc
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func int64Val(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
