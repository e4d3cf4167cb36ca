// Package command holds the pipi commands.
package command

import (
	goflag "flag"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/bcd/internal/log"
)

// Error is the class of errors returned by the commands.
var Error = errs.Class("pipi")

var (
	configFile string

	Root = &cobra.Command{
		Use:   "pipi",
		Short: "pipi computes pi and friends with packed decimal arithmetic.",
		Long: "`pipi` evaluates series for pi and square roots on packed BCD numbers.\n\n" +
			"Every flag can also be set with a PIPI_ environment variable (PIPI_DIGITS for --digits) " +
			"or in the file named by --config.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			return log.Init(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
)

// loadConfig fills flags that were not given on the command line from the
// environment and the config file, in that order of preference.
func loadConfig(fs *pflag.FlagSet) (err error) {
	v := viper.New()
	v.SetEnvPrefix("PIPI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)

		err = v.ReadInConfig()
		if err != nil {
			return err
		}
	}

	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}

		err = fs.Set(f.Name, v.GetString(f.Name))
	})

	return err
}

func init() {
	Root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	log.RegisterFlags(Root.PersistentFlags())

	// glog registers its flags on the standard flag set. Logging goes to
	// stderr unless asked otherwise.
	_ = goflag.Set("logtostderr", "true")
	Root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}
