package actions

import "fmt"
import "github.com/cwacek/irtokens/pipeline"

// ShowEnvironment lists the environment variables the configuration reads.
type ShowEnvironment struct{}

func (a *ShowEnvironment) Run() error {
	usage, err := pipeline.Usage()
	if err != nil {
		return err
	}
	fmt.Println(usage)
	return nil
}
