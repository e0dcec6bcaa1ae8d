package release

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/shiplog/internal/model"
)

// Confirm prints the prepared release and asks the user to approve it.
func Confirm(release model.Release) (bool, error) {
	color.New(color.Bold).Printf("Release %s\n\n", release.TagName)
	fmt.Println(release.Body)
	fmt.Println()
	color.New(color.FgYellow).Printf("Create tag %s and publish this release? [y/N] ", release.TagName)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, errm.Wrap(err, "read answer")
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
