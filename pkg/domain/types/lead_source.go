package types

// LeadSource identifies which form produced a lead
type LeadSource string

const (
	LeadSourceAudit   LeadSource = "audit"
	LeadSourceContact LeadSource = "contact"
)

// String returns the string representation of the lead source
func (s LeadSource) String() string {
	return string(s)
}
