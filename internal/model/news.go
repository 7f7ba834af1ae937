package model

import "time"

// News is a published article a user can bookmark.
type News struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Gambar    string    `json:"gambar" gorm:"size:255"`
	Judul     string    `json:"judul" gorm:"size:255;not null"`
	Subjudul  string    `json:"subjudul" gorm:"size:255"`
	Isi       string    `json:"isi" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the schema's singular-looking table name.
func (News) TableName() string { return "news" }

// SavedNews links a user to a bookmarked article.
type SavedNews struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	NewsID    uint      `json:"news_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	News News `json:"-" gorm:"foreignKey:NewsID"`
}

func (SavedNews) TableName() string { return "saved_news" }
