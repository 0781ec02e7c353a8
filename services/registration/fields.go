package registration

import "errors"

// Field identifies a single input of the registration form. Field updates
// are keyed by these identifiers; anything else is rejected at the boundary.
type Field string

const (
	FieldFullName         Field = "fullName"
	FieldPhoneNumber      Field = "phoneNumber"
	FieldEmail            Field = "email"
	FieldPassword         Field = "password"
	FieldConfirmPassword  Field = "confirmPassword"
	FieldServiceTypes     Field = "serviceTypes"
	FieldBusinessName     Field = "businessName"
	FieldHourlyRate       Field = "hourlyRate"
	FieldDescription      Field = "description"
	FieldExperience       Field = "experience"
	FieldAddress          Field = "address"
	FieldLatitude         Field = "latitude"
	FieldLongitude        Field = "longitude"
	FieldAvailableHours   Field = "availableHours"
	FieldEmergencySupport Field = "emergencySupport"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrInvalidValue = errors.New("invalid value type for form field")
)

// Step is one of the three wizard pages.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepServiceInfo
	StepLocationAvailability
)

// stepFields maps each step to the fields it validates. Description,
// experience and the location coordinates are collected but never gate
// navigation.
var stepFields = map[Step][]Field{
	StepPersonalInfo: {
		FieldFullName,
		FieldPhoneNumber,
		FieldEmail,
		FieldPassword,
		FieldConfirmPassword,
	},
	StepServiceInfo: {
		FieldServiceTypes,
		FieldBusinessName,
		FieldHourlyRate,
	},
	StepLocationAvailability: {
		FieldAddress,
		FieldAvailableHours,
	},
}

// validatedFields is the union of all step fields, in display order.
var validatedFields = []Field{
	FieldFullName,
	FieldPhoneNumber,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldServiceTypes,
	FieldBusinessName,
	FieldHourlyRate,
	FieldAddress,
	FieldAvailableHours,
}

// Fields returns the fields validated on this step.
func (s Step) Fields() []Field {
	return stepFields[s]
}

// Valid reports whether s is a real wizard step.
func (s Step) Valid() bool {
	return s >= StepPersonalInfo && s <= StepLocationAvailability
}

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "Personal Information"
	case StepServiceInfo:
		return "Service Information"
	case StepLocationAvailability:
		return "Location & Availability"
	default:
		return "Unknown"
	}
}
