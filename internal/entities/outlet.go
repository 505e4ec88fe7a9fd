package entities

import (
	"strings"

	"gorm.io/datatypes"
)

// MediaOutlet publishes critic reviews.
type MediaOutlet struct {
	ID          int64                  `gorm:"primaryKey"`
	Name        string                 `gorm:"column:name"`
	WebsiteURL  datatypes.Null[string] `gorm:"column:website_url"`
	FoundedYear datatypes.Null[int64]  `gorm:"column:founded_year"`
}

func (MediaOutlet) TableName() string {
	return "media_outlets"
}

func NewMediaOutlet(name string, websiteURL datatypes.Null[string], foundedYear datatypes.Null[int64]) (MediaOutlet, error) {
	o := MediaOutlet{
		Name:        strings.TrimSpace(name),
		WebsiteURL:  websiteURL,
		FoundedYear: foundedYear,
	}
	if err := o.Validate(); err != nil {
		return MediaOutlet{}, err
	}
	return o, nil
}

func (o MediaOutlet) Validate() error {
	if err := requireName("media outlet", "name", o.Name); err != nil {
		return err
	}
	if o.FoundedYear.Valid {
		return requireYear("media outlet", "founded year", int(o.FoundedYear.V), MinFoundedYear)
	}
	return nil
}

func (o MediaOutlet) WithID(id int64) MediaOutlet {
	o.ID = id
	return o
}
