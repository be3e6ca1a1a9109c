package models

import "encoding/json"

// Car is a rental car. Field names follow the backend API: "merk" is the
// brand, "harga" the daily rental price in rupiah.
type Car struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Merk         string     `json:"merk"`
	Description  string     `json:"description"`
	Transmission string     `json:"transmission"`
	Seat         FlexInt    `json:"seat"`
	Harga        FlexNumber `json:"harga"`
	Image        string     `json:"image"`
}

// EntityID implements resource.Entity.
func (c Car) EntityID() int64 { return c.ID }

// ImageRef implements resource.ImageBearer.
func (c Car) ImageRef() string { return c.Image }

// FlexInt tolerates the backend serializing numbers as strings.
type FlexInt int

// Int returns the plain int value for template helpers.
func (f FlexInt) Int() int { return int(f) }

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	var parsed int
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return err
	}
	*f = FlexInt(parsed)
	return nil
}

// FlexNumber tolerates the backend serializing prices as strings.
type FlexNumber float64

// Float64 returns the plain float value for template helpers.
func (f FlexNumber) Float64() float64 { return float64(f) }

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	var parsed float64
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return err
	}
	*f = FlexNumber(parsed)
	return nil
}
