package models

// Employee is one entry of the employees list, appended by registration.
// JSON keys match the persisted payload.
type Employee struct {
	EmployeeID    string `json:"employeeId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"empDob"`
	Aadhaar       string `json:"emp_aadhaar"`
	PAN           string `json:"emp_pan"`
	Role          string `json:"emp_role"`
}
