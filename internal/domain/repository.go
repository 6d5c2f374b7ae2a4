package domain

// Repository identifies a GitHub repository by owner and name.
type Repository struct {
	Owner string
	Name  string
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
