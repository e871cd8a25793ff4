package model

import "strings"

type ICPType string

const (
	ICPTypeEnterprise ICPType = "Enterprise"
	ICPTypeSMB        ICPType = "SMB"
	ICPTypeStartup    ICPType = "Startup"
	ICPTypeAgency     ICPType = "Agency"
)

// ICPTypes lists the ICP classifications in picker order.
func ICPTypes() []ICPType {
	return []ICPType{ICPTypeEnterprise, ICPTypeSMB, ICPTypeStartup, ICPTypeAgency}
}

func (t ICPType) Valid() bool {
	for _, v := range ICPTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// Next returns the type after t in picker order, wrapping around.
// Unknown values map to the first type.
func (t ICPType) Next() ICPType { return t.step(1) }

// Prev is the inverse of Next.
func (t ICPType) Prev() ICPType { return t.step(-1) }

func (t ICPType) step(d int) ICPType {
	all := ICPTypes()
	for i, v := range all {
		if v == t {
			return all[(i+d+len(all))%len(all)]
		}
	}
	return all[0]
}

type CompetitorType string

const (
	CompetitorDirect   CompetitorType = "Direct"
	CompetitorIndirect CompetitorType = "Indirect"
)

func (t CompetitorType) Valid() bool {
	return t == CompetitorDirect || t == CompetitorIndirect
}

type CompanyProfile struct {
	Name        string `json:"name" yaml:"name"`
	Website     string `json:"website" yaml:"website"`
	Description string `json:"description" yaml:"description"`
}

// ICP is an ideal customer profile.
type ICP struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Type        ICPType `json:"type" yaml:"type"`
	Description string  `json:"description" yaml:"description"`
}

// Draft returns the editable fields of the ICP.
func (i ICP) Draft() ICPDraft {
	return ICPDraft{Name: i.Name, Type: i.Type, Description: i.Description}
}

// ICPDraft holds the fields of an ICP that has no id yet.
type ICPDraft struct {
	Name        string  `json:"name"`
	Type        ICPType `json:"type"`
	Description string  `json:"description"`
}

// BlankICPDraft is the template used when the add flow starts or resets.
func BlankICPDraft() ICPDraft {
	return ICPDraft{Type: ICPTypeEnterprise}
}

// HasName reports whether the required name field is non-blank.
func HasName(name string) bool {
	return strings.TrimSpace(name) != ""
}

type Competitor struct {
	ID      int64          `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Website string         `json:"website" yaml:"website"`
	Type    CompetitorType `json:"type" yaml:"type"`
}

// Snapshot is a copy of every committed entity at one point in time.
type Snapshot struct {
	Profile     CompanyProfile `json:"profile" yaml:"profile"`
	ICPs        []ICP          `json:"icps" yaml:"icps"`
	Competitors []Competitor   `json:"competitors" yaml:"competitors"`
}
