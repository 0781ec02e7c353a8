// models/service_type.go
package models

// ServiceType identifies a category of service offered on the platform.
type ServiceType string

const (
	ServiceTypePlumber        ServiceType = "plumber"
	ServiceTypeElectrician    ServiceType = "electrician"
	ServiceTypePunctureRepair ServiceType = "puncture-repair"
	ServiceTypeCarpenter      ServiceType = "carpenter"
	ServiceTypePainter        ServiceType = "painter"
	ServiceTypeMechanic       ServiceType = "mechanic"
	ServiceTypeCleaning       ServiceType = "cleaning"
	ServiceTypeGardening      ServiceType = "gardening"
)

// ServiceTypes is the fixed catalog of selectable service types.
var ServiceTypes = []ServiceType{
	ServiceTypePlumber,
	ServiceTypeElectrician,
	ServiceTypePunctureRepair,
	ServiceTypeCarpenter,
	ServiceTypePainter,
	ServiceTypeMechanic,
	ServiceTypeCleaning,
	ServiceTypeGardening,
}

// IsValidServiceType reports whether t is part of the catalog.
func IsValidServiceType(t ServiceType) bool {
	for _, st := range ServiceTypes {
		if st == t {
			return true
		}
	}
	return false
}
