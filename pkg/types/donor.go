package types

import (
	"fmt"
	"strings"
)

type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

var bloodTypes = []BloodType{
	BloodTypeAPos,
	BloodTypeANeg,
	BloodTypeBPos,
	BloodTypeBNeg,
	BloodTypeABPos,
	BloodTypeABNeg,
	BloodTypeOPos,
	BloodTypeONeg,
}

// BloodTypes returns the eight ABO/Rh combinations in display order.
func BloodTypes() []BloodType {
	out := make([]BloodType, len(bloodTypes))
	copy(out, bloodTypes)
	return out
}

func (b BloodType) Valid() bool {
	for _, bt := range bloodTypes {
		if b == bt {
			return true
		}
	}
	return false
}

func (b BloodType) String() string {
	return string(b)
}

// ParseBloodType is an exact, case-sensitive match against the enumerated values.
func ParseBloodType(s string) (BloodType, error) {
	b := BloodType(s)
	if !b.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBloodType, s)
	}
	return b, nil
}

type Donor struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	BloodType    BloodType `db:"blood_type" json:"bloodType"`
	Availability string    `db:"availability" json:"availability"`
	Location     string    `db:"location" json:"location"`
	DisplayOrder int       `db:"display_order" json:"-"`
}

// SearchFilters narrows a donor search. Zero values mean "no filter".
type SearchFilters struct {
	BloodType BloodType `form:"bloodType" json:"bloodType"`
	Location  string    `form:"location" json:"location"`
}

func (f SearchFilters) Normalize() SearchFilters {
	return SearchFilters{
		BloodType: BloodType(strings.TrimSpace(string(f.BloodType))),
		Location:  strings.TrimSpace(f.Location),
	}
}

func (f SearchFilters) IsEmpty() bool {
	n := f.Normalize()
	return n.BloodType == "" && n.Location == ""
}

// PublicDonor is what visitors see in search results. Contact details stay
// with the coordinator.
type PublicDonor struct {
	ID           string    `json:"id"`
	BloodType    BloodType `json:"bloodType"`
	Availability string    `json:"availability"`
	Location     string    `json:"location"`
}

func (d *Donor) Public() PublicDonor {
	return PublicDonor{
		ID:           d.ID,
		BloodType:    d.BloodType,
		Availability: d.Availability,
		Location:     d.Location,
	}
}
