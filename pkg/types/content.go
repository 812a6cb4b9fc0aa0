package types

import (
	"strings"
	"time"
)

type BloodDrive struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Date         string  `db:"date" json:"date"`
	Time         string  `db:"time" json:"time"`
	Location     string  `db:"location" json:"location"`
	Description  string  `db:"description" json:"description"`
	Organizer    *string `db:"organizer" json:"organizer,omitempty"`
	Contact      *string `db:"contact" json:"contact,omitempty"`
	ImageURL     *string `db:"image_url" json:"imageUrl,omitempty"`
	DisplayOrder int     `db:"display_order" json:"-"`
}

// DisplayDate formats Date as "August 15, 2024", falling back to the raw value.
func (d *BloodDrive) DisplayDate() string {
	return displayDate(d.Date)
}

type Article struct {
	ID            string  `db:"id" json:"id"`
	Slug          string  `db:"slug" json:"slug"`
	Title         string  `db:"title" json:"title"`
	Excerpt       string  `db:"excerpt" json:"excerpt"`
	Content       string  `db:"content" json:"content"`
	ImageURL      string  `db:"image_url" json:"imageUrl"`
	Author        *string `db:"author" json:"author,omitempty"`
	DatePublished *string `db:"date_published" json:"datePublished,omitempty"`
	Category      *string `db:"category" json:"category,omitempty"`
	DisplayOrder  int     `db:"display_order" json:"-"`
}

func (a *Article) Paragraphs() []string {
	lines := strings.Split(a.Content, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (a *Article) DisplayDate() string {
	if a.DatePublished == nil {
		return ""
	}
	return displayDate(*a.DatePublished)
}

func displayDate(s string) string {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}

type ContactRequest struct {
	ID             string    `json:"id"`
	DonorID        string    `json:"donorId"`
	BloodType      BloodType `json:"bloodType"`
	Location       string    `json:"location"`
	RequesterName  string    `json:"requesterName" form:"requesterName"`
	RequesterEmail string    `json:"requesterEmail" form:"requesterEmail"`
	Message        string    `json:"message" form:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}
