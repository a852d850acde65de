package logging

import "fmt"
import "strings"
import "testing"
import log "github.com/cihub/seelog"

var appConfig = `
  <seelog type="sync" minlevel='%s'>
  <outputs formatid="irtokens">
    <filter levels="critical,error,warn,info">
      <console formatid="irtokens" />
    </filter>
    <filter levels="debug,trace">
      <console formatid="debug" />
    </filter>
  </outputs>
  <formats>
  <format id="irtokens" format="irtokens: [%%LEV] %%Msg%%n" />
  <format id="debug" format="irtokens: [%%LEV] %%Func :: %%Msg%%n" />
  </formats>
  </seelog>
`

// Levels understood by SetupLevel, lowest first.
var Levels = []string{"trace", "debug", "info", "warn", "error", "critical", "off"}

// LevelForVerbosity maps a -v count onto a seelog level name.
func LevelForVerbosity(verbosity int) string {
	switch verbosity {
	case 0:
		fallthrough
	case 1:
		return "warn"
	case 2:
		return "info"
	case 3:
		return "debug"
	default:
		return "trace"
	}
}

// SetupLogging configures logging for a -v count.
func SetupLogging(verbosity int) error {
	return SetupLevel(LevelForVerbosity(verbosity))
}

// SetupLevel replaces the global seelog logger with a console logger at the
// named minimum level.
func SetupLevel(level string) error {
	level = strings.ToLower(strings.TrimSpace(level))

	known := false
	for _, l := range Levels {
		if l == level {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown log level %q", level)
	}

	logger, err := log.LoggerFromConfigAsBytes(
		[]byte(fmt.Sprintf(appConfig, level)))
	if err != nil {
		return err
	}

	return log.ReplaceLogger(logger)
}

func SetupTestLogging() {
	var config string
	if testing.Verbose() {
		config = fmt.Sprintf(appConfig, "debug")
	} else {
		config = fmt.Sprintf(appConfig, "warn")
	}

	logger, err := log.LoggerFromConfigAsBytes([]byte(config))

	if err != nil {
		fmt.Println(err)
		return
	}

	log.ReplaceLogger(logger)
}
