package foodbank

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName                 = errors.New("food bank name cannot be empty")
	ErrEmptyContactPerson        = errors.New("contact person cannot be empty")
	ErrInvalidEmail              = errors.New("invalid email format")
	ErrEmptyPhone                = errors.New("phone cannot be empty")
	ErrInvalidCoordinates        = errors.New("coordinates out of range")
	ErrInvalidVerificationStatus = errors.New("invalid verification status")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// MilesPerDegree is the flat-earth conversion used for "nearby" searches.
const MilesPerDegree = 69.0

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func ParseVerificationStatus(s string) (VerificationStatus, error) {
	switch v := VerificationStatus(s); v {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return v, nil
	default:
		return "", ErrInvalidVerificationStatus
	}
}

func (v VerificationStatus) String() string { return string(v) }

type Coordinates struct {
	Lat float64
	Lng float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{Lat: lat, Lng: lng}, nil
}

// DistanceMiles is a rough planar approximation; good enough for ranking
// pickup partners within a metro area.
func (c Coordinates) DistanceMiles(o Coordinates) float64 {
	dLat := c.Lat - o.Lat
	dLng := c.Lng - o.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * MilesPerDegree
}

type Address struct {
	Street      string
	City        string
	State       string
	ZipCode     string
	Coordinates *Coordinates
}

type FoodBank struct {
	id                 uuid.UUID
	name               string
	contactPerson      string
	email              string
	phone              string
	address            Address
	verificationStatus VerificationStatus
	acceptedCategories []string
	createdAt          time.Time
	updatedAt          time.Time
}

type RegisterInput struct {
	Name               string
	ContactPerson      string
	Email              string
	Phone              string
	Street             string
	City               string
	State              string
	ZipCode            string
	Latitude           *float64
	Longitude          *float64
	AcceptedCategories []string
}

// Register creates an unverified food bank.
func Register(in RegisterInput, now time.Time) (*FoodBank, error) {
	fb := &FoodBank{
		id:            uuid.New(),
		name:          strings.TrimSpace(in.Name),
		contactPerson: strings.TrimSpace(in.ContactPerson),
		email:         strings.ToLower(strings.TrimSpace(in.Email)),
		phone:         strings.TrimSpace(in.Phone),
		address: Address{
			Street:  strings.TrimSpace(in.Street),
			City:    strings.TrimSpace(in.City),
			State:   strings.TrimSpace(in.State),
			ZipCode: strings.TrimSpace(in.ZipCode),
		},
		verificationStatus: VerificationPending,
		acceptedCategories: normalizeCategories(in.AcceptedCategories),
		createdAt:          now,
		updatedAt:          now,
	}

	switch {
	case fb.name == "":
		return nil, ErrEmptyName
	case fb.contactPerson == "":
		return nil, ErrEmptyContactPerson
	case !emailRegex.MatchString(fb.email):
		return nil, ErrInvalidEmail
	case fb.phone == "":
		return nil, ErrEmptyPhone
	}

	if (in.Latitude == nil) != (in.Longitude == nil) {
		return nil, ErrInvalidCoordinates
	}
	if in.Latitude != nil {
		coords, err := NewCoordinates(*in.Latitude, *in.Longitude)
		if err != nil {
			return nil, err
		}
		fb.address.Coordinates = &coords
	}
	return fb, nil
}

func Reconstruct(
	id uuid.UUID,
	name, contactPerson, email, phone string,
	address Address,
	verificationStatus VerificationStatus,
	acceptedCategories []string,
	createdAt, updatedAt time.Time,
) *FoodBank {
	return &FoodBank{
		id:                 id,
		name:               name,
		contactPerson:      contactPerson,
		email:              email,
		phone:              phone,
		address:            address,
		verificationStatus: verificationStatus,
		acceptedCategories: acceptedCategories,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (f *FoodBank) SetVerification(status VerificationStatus, now time.Time) {
	f.verificationStatus = status
	f.updatedAt = now
}

func (f *FoodBank) IsVerified() bool {
	return f.verificationStatus == VerificationVerified
}

func normalizeCategories(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (f *FoodBank) ID() uuid.UUID                          { return f.id }
func (f *FoodBank) Name() string                           { return f.name }
func (f *FoodBank) ContactPerson() string                  { return f.contactPerson }
func (f *FoodBank) Email() string                          { return f.email }
func (f *FoodBank) Phone() string                          { return f.phone }
func (f *FoodBank) Address() Address                       { return f.address }
func (f *FoodBank) VerificationStatus() VerificationStatus { return f.verificationStatus }
func (f *FoodBank) AcceptedCategories() []string           { return f.acceptedCategories }
func (f *FoodBank) CreatedAt() time.Time                   { return f.createdAt }
func (f *FoodBank) UpdatedAt() time.Time                   { return f.updatedAt }
