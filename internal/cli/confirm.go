package cli

import "github.com/charmbracelet/huh"

// confirmDestructive runs an inline yes/no prompt for destructive
// commands. The --yes flag should bypass it for scripted use.
func confirmDestructive(title string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
