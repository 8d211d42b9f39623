package models

const SiteStatusActive = "Active"

// Site is one physical installation the customer can view bills for.
// Snapshots are immutable; they are fetched per query and never mutated.
type Site struct {
	ID              string `json:"id"`
	ClientNumber    string `json:"clientNumber"`
	SiteNumber      string `json:"siteNumber"`
	Address         string `json:"address"`
	Status          string `json:"status"`
	Owner           bool   `json:"owner"`
	Contract        string `json:"contract"`
	ContractAccount string `json:"contractAccount"`
}

// Key is the identity of a site. The backend reuses ids across contracts,
// so identity is the id+contract pair, never the id alone.
func (s Site) Key() string {
	return s.ID + "/" + s.Contract
}

func (s Site) Active() bool {
	return s.Status == SiteStatusActive
}
