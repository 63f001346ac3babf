package hunter

import "strconv"

// SearchParams are the inputs to SearchDomain. Exactly one of Domain or
// Company is required; Domain takes precedence when both are set. Zero-valued
// filters are left out of the query entirely.
type SearchParams struct {
	Domain     string
	Company    string
	Limit      int
	Offset     int
	Seniority  string
	Department string
	EmailType  string
}

func (p SearchParams) apply(q map[string]string) error {
	if err := applyTarget(q, p.Domain, p.Company); err != nil {
		return err
	}
	applyFilters(q, p)
	return nil
}

// FindParams are the inputs to FindEmail. Besides the Domain/Company target,
// either both FirstName and LastName or FullName must be set. The complete
// pair takes precedence; FullName is used only when the pair is incomplete.
type FindParams struct {
	Domain    string
	Company   string
	FirstName string
	LastName  string
	FullName  string
}

func (p FindParams) apply(q map[string]string) error {
	if err := applyTarget(q, p.Domain, p.Company); err != nil {
		return err
	}
	return applyName(q, p.FirstName, p.LastName, p.FullName)
}

func applyTarget(q map[string]string, domain, company string) error {
	switch {
	case domain != "":
		q["domain"] = domain
	case company != "":
		q["company"] = company
	default:
		return ErrMissingTarget
	}
	return nil
}

// applyName adds the person identification parameters. A lone first or last
// name is dropped, never sent alongside the full name.
func applyName(q map[string]string, first, last, full string) error {
	switch {
	case first != "" && last != "":
		q["first_name"] = first
		q["last_name"] = last
	case full != "":
		q["full_name"] = full
	default:
		return ErrMissingName
	}
	return nil
}

// applyFilters adds whichever optional filters are set. The EmailType option
// maps to the wire parameter "type".
func applyFilters(q map[string]string, p SearchParams) {
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Offset > 0 {
		q["offset"] = strconv.Itoa(p.Offset)
	}
	if p.Seniority != "" {
		q["seniority"] = p.Seniority
	}
	if p.Department != "" {
		q["department"] = p.Department
	}
	if p.EmailType != "" {
		q["type"] = p.EmailType
	}
}
