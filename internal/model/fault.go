package model

// FaultRecord describes one diagnostic fault code for an appliance brand.
// Cause and check text are optional; nil means "not applicable".
type FaultRecord struct {
	Brand      string  `yaml:"brand" json:"brand"`
	FaultCode  string  `yaml:"fault_code" json:"fault_code"`
	Model      string  `yaml:"model" json:"model"` // may list several models
	FaultCause *string `yaml:"fault_cause,omitempty" json:"fault_cause,omitempty"`
	FaultCheck *string `yaml:"fault_check,omitempty" json:"fault_check,omitempty"`
}

// Key identifies a record for list rendering.
func (f FaultRecord) Key() string {
	return f.Brand + "/" + f.FaultCode
}

func (f FaultRecord) Cause() (string, bool) {
	if f.FaultCause == nil {
		return "", false
	}
	return *f.FaultCause, true
}

func (f FaultRecord) Check() (string, bool) {
	if f.FaultCheck == nil {
		return "", false
	}
	return *f.FaultCheck, true
}
