package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/dit/cmd/configure"
	"github.com/gigurra/dit/cmd/decode"
	"github.com/gigurra/dit/cmd/encode"
	"github.com/gigurra/dit/cmd/play"
	"github.com/gigurra/dit/cmd/table"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupEncoding = "encoding"
	groupAudio    = "audio"
	groupSettings = "settings"
)

// withGroup sets the GroupID on a command and returns it
func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "dit",
		Short:   "Morse code from text, out loud",
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupEncoding, Title: "Encoding:"},
			{ID: groupAudio, Title: "Audio:"},
			{ID: groupSettings, Title: "Settings:"},
		},
		SubCmds: []*cobra.Command{
			withGroup(encode.Cmd(), groupEncoding),
			withGroup(decode.Cmd(), groupEncoding),
			withGroup(table.Cmd(), groupEncoding),

			withGroup(play.Cmd(), groupAudio),

			withGroup(configure.Cmd(), groupSettings),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
