package entities

import "strings"

type Genre struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (Genre) TableName() string {
	return "genres"
}

func NewGenre(name string) (Genre, error) {
	g := Genre{Name: strings.TrimSpace(name)}
	if err := g.Validate(); err != nil {
		return Genre{}, err
	}
	return g, nil
}

func (g Genre) Validate() error {
	return requireName("genre", "name", g.Name)
}

func (g Genre) WithID(id int64) Genre {
	g.ID = id
	return g
}
