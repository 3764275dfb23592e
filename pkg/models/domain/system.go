package domain

// SystemStatus is the operational state of a treatment system.
type SystemStatus string

const (
	SystemActive      SystemStatus = "active"
	SystemInactive    SystemStatus = "inactive"
	SystemMaintenance SystemStatus = "maintenance"
)

// Photo is an image attached to a system or inspection. Data carries the
// PNG bytes inline (base64 in JSON); a photo without data is listed but
// not embedded.
type Photo struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Data    []byte `json:"data,omitempty"`
}

// System is one water-treatment system. Children holds nested process
// stages when the system is modeled as a multi-stage installation.
type System struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Status      SystemStatus `json:"status"`
	Description string       `json:"description,omitempty"`
	Children    []System     `json:"children,omitempty"`
	Photos      []Photo      `json:"photos,omitempty"`
}
