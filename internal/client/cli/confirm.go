package cli

import (
	"fmt"
	"strings"
)

// resolveConfirmation renders the active confirmation dialog and invokes the
// chosen action. An unrecognized answer counts as the first (cancel) action.
func (a *App) resolveConfirmation() {
	c := a.store.Confirmation()
	if !c.Visible || len(c.Actions) == 0 {
		return
	}
	defer a.store.HideConfirmation()

	fmt.Fprintf(a.out, "%s\n%s\n", c.Title, c.Description)
	labels := make([]string, len(c.Actions))
	for i, act := range c.Actions {
		labels[i] = act.Label
	}

	answer, err := getSimpleText(a.reader, strings.Join(labels, "/"), a.out)
	if err != nil {
		return
	}

	chosen := c.Actions[0]
	for _, act := range c.Actions {
		if strings.EqualFold(act.Label, answer) {
			chosen = act
			break
		}
	}
	if chosen.Invoke != nil {
		chosen.Invoke()
	}
}
