package domain

import "strings"

// MaxCategories bounds the registry size. Adding past the limit is
// rejected, never truncated.
const MaxCategories = 10

// Category is a user-defined label with a symbolic icon.
// Name uniqueness is by convention only.
type Category struct {
	ID   string
	Name string
	Icon IconName
}

// NewCategory builds a category with a trimmed name. Returns nil when the
// trimmed name is empty.
func NewCategory(id, name string, icon IconName) *Category {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return &Category{ID: id, Name: name, Icon: icon}
}

// SeedCategory is one entry of the default registry installed on first run.
type SeedCategory struct {
	Name string
	Icon IconName
}

// DefaultCategories is the seed registry used when no categories exist
// or when persisted categories cannot be read.
var DefaultCategories = []SeedCategory{
	{Name: "GRE Prep", Icon: IconBook},
	{Name: "Portfolio", Icon: IconBriefcase},
	{Name: "Projects", Icon: IconSettings},
	{Name: "Health", Icon: IconHeart},
	{Name: "Household Tasks", Icon: IconHome},
	{Name: "Habits", Icon: IconActivity},
	{Name: "Break", Icon: IconGamepad},
}
