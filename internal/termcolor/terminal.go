package termcolor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "on", "force":
		return ModeAlways, nil
	case "never", "off", "none":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
}

// Terminal is what the palette needs to know about the output stream.
type Terminal struct {
	Enabled bool
	Profile Profile
	Light   bool
}

// Detect resolves mode against the environment and stdout. An explicit
// always/never wins; auto honours, in order, TERM=dumb, NO_COLOR,
// CLICOLOR=0, CLICOLOR_FORCE/FORCE_COLOR and finally the TTY check.
func Detect(mode ColorMode, stdout *os.File, env map[string]string) Terminal {
	t := Terminal{Profile: DetectProfile(env), Light: isLightBackground(env)}
	switch mode {
	case ModeAlways:
		t.Enabled = true
	case ModeNever:
	default:
		t.Enabled = autoEnabled(stdout, env)
	}
	return t
}

func autoEnabled(stdout *os.File, env map[string]string) bool {
	switch {
	case strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb"):
		return false
	case strings.TrimSpace(env["NO_COLOR"]) != "":
		return false
	case strings.TrimSpace(env["CLICOLOR"]) == "0":
		return false
	case forced(env["CLICOLOR_FORCE"]), forced(env["FORCE_COLOR"]):
		return true
	}
	return stdout != nil && term.IsTerminal(int(stdout.Fd()))
}

func forced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// DetectProfile reads COLORTERM and TERM.
func DetectProfile(env map[string]string) Profile {
	ct := strings.ToLower(env["COLORTERM"])
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") {
		return ProfileTrueColor
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

// isLightBackground reads the background index from COLORFGBG ("fg;bg" or
// "fg;other;bg"); 7 and above are light. TERM names containing "light" also count.
func isLightBackground(env map[string]string) bool {
	if raw := strings.TrimSpace(env["COLORFGBG"]); raw != "" {
		parts := strings.Split(raw, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg >= 7
		}
	}
	return strings.Contains(strings.ToLower(env["TERM"]), "light")
}

func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		k, v, _ := strings.Cut(entry, "=")
		env[k] = v
	}
	return env
}
