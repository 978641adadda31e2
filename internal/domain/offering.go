package domain

import "time"

// Offering is a top-level service category shown to customers
type Offering struct {
	ID           string
	Name         string
	Icon         string
	SubOfferings []SubOffering
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SubOffering is a purchasable, priced unit within an Offering
type SubOffering struct {
	ID          string
	Name        string
	Price       float64
	Duration    string // free text, e.g. "2-3 hours"
	Description string
}

// FindSubOffering returns the sub-offering with the given id
func (o *Offering) FindSubOffering(id string) (*SubOffering, bool) {
	for i := range o.SubOfferings {
		if o.SubOfferings[i].ID == id {
			return &o.SubOfferings[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the offering
func (o *Offering) Clone() *Offering {
	if o == nil {
		return nil
	}
	c := *o
	c.SubOfferings = append([]SubOffering(nil), o.SubOfferings...)
	return &c
}
