package pipeline

import "flag"
import "os"
import "testing"
import "github.com/cwacek/irtokens/logging"

func TestMain(m *testing.M) {
	flag.Parse()
	logging.SetupTestLogging()
	os.Exit(m.Run())
}
