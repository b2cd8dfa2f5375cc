package models

// ServiceType distinguishes the two categories of provider accounts
type ServiceType string

const (
	ServiceTypeHostelOwner    ServiceType = "hostel_owner"
	ServiceTypeTiffinProvider ServiceType = "tiffin_provider"
)

// User is the signed-in account as seen by the client
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	Role        string      `json:"role,omitempty"`
	ServiceType ServiceType `json:"serviceType,omitempty"`
}
