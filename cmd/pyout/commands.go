package pyout

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vsoch/pyout/internal/version"
	"github.com/vsoch/pyout/pkg/logging"
	"github.com/vsoch/pyout/pkg/styleio"
	"github.com/vsoch/pyout/pkg/styles"
	"github.com/vsoch/pyout/pkg/term"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "pyout",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newDefaultsCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newSwatchCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// tablePropertyCompletion provides shell completion for table-level
// property names
func tablePropertyCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return styles.TableProperties(), cobra.ShellCompDirectiveNoFileComp
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate <file>...",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.validate")
			rich := detectRenderMode(os.Stdout) == renderRich

			for _, path := range args {
				doc, err := styleio.Load(path)
				if err != nil {
					return fmt.Errorf(MsgErrLoadStyle, path, err)
				}

				if err := styles.Validate(doc); err != nil {
					logger.Debug().Str("path", path).Err(err).Msg("Style rejected")
					reportInvalid(cmd.OutOrStdout(), rich, path, err)
					return fmt.Errorf(MsgErrInvalidStyle, path)
				}

				logger.Debug().Str("path", path).Msg("Style accepted")
				reportValid(cmd.OutOrStdout(), rich, path)
			}

			return nil
		},
	}
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge [<file>...]",
		Short:   MsgMergeShort,
		Long:    MsgMergeLong,
		Example: MsgMergeExample,
		Args:    cobra.ArbitraryArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, _ := cmd.Flags().GetStringSlice("columns")
			useUser, _ := cmd.Flags().GetBool("user")
			output, _ := cmd.Flags().GetString("output")

			format, err := styleio.ParseFormat(output)
			if err != nil {
				return err
			}

			var doc styles.Document
			switch {
			case useUser:
				doc, err = styleio.LoadUser()
				if err != nil {
					return fmt.Errorf(MsgErrLoadUser, err)
				}
			case len(columns) > 0:
				doc = styles.NewDocument(columns...)
			case len(args) > 0:
				doc, err = styleio.Load(args[0])
				if err != nil {
					return fmt.Errorf(MsgErrLoadStyle, args[0], err)
				}
				args = args[1:]
			default:
				return fmt.Errorf(MsgErrNoMergeInput)
			}

			for _, path := range args {
				overrides, err := styleio.Load(path)
				if err != nil {
					return fmt.Errorf(MsgErrLoadStyle, path, err)
				}
				doc = styles.Adopt(doc, overrides)
			}

			encoded, err := styleio.Encode(doc, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(encoded)
			return err
		},
	}

	cmd.Flags().StringSliceP("columns", "c", nil, MsgFlagColumns)
	cmd.Flags().Bool("user", false, MsgFlagUser)
	cmd.Flags().StringP("output", "o", "yaml", MsgFlagOutput)
	cmd.MarkFlagsMutuallyExclusive("columns", "user")

	return cmd
}

func newDefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "defaults [<property>]",
		Short:             MsgDefaultsShort,
		Long:              MsgDefaultsLong,
		Example:           MsgDefaultsExample,
		Args:              cobra.MaximumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: tablePropertyCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			format, err := styleio.ParseFormat(output)
			if err != nil {
				return err
			}

			props := styles.TableProperties()
			if len(args) == 1 {
				props = args
			}

			doc := make(styles.Document, len(props))
			for _, prop := range props {
				value, err := styles.Default(prop)
				if err != nil {
					return err
				}
				doc[prop] = value
			}

			encoded, err := styleio.Encode(doc, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(encoded)
			return err
		},
	}

	cmd.Flags().StringP("output", "o", "yaml", MsgFlagOutput)

	return cmd
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init [<path>]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), styleio.Starter())
				return nil
			}

			path := styleio.UserStylePath()
			if len(args) == 1 {
				path = args[0]
			}

			if err := styleio.WriteStarter(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgStarterWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		Short:   MsgSchemaShort,
		Long:    MsgSchemaLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(MsgSchemaReference))
			return nil
		},
	}
}

func newSwatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "swatch <file> <column> <value>",
		Short:   MsgSwatchShort,
		Long:    MsgSwatchLong,
		Example: MsgSwatchExample,
		Args:    cobra.ExactArgs(3),
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, column, raw := args[0], args[1], args[2]

			doc, err := styleio.Load(path)
			if err != nil {
				return fmt.Errorf(MsgErrLoadStyle, path, err)
			}
			if err := styles.Validate(doc); err != nil {
				return err
			}

			value := parseFieldValue(raw)
			style := term.CellStyle(styles.EffectiveColumn(doc, column), value)
			fmt.Fprintln(cmd.OutOrStdout(), style.Render(raw))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pyout version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

// parseFieldValue turns a command-line value into the type it would have
// as table data, so lookup and interval elements resolve faithfully.
func parseFieldValue(raw string) interface{} {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func reportValid(w io.Writer, rich bool, path string) {
	if rich {
		pterm.Success.WithWriter(w).Println(path)
		return
	}
	fmt.Fprintf(w, "%s: ok\n", path)
}

func reportInvalid(w io.Writer, rich bool, path string, err error) {
	if rich {
		pterm.Error.WithWriter(w).Printfln("%s: %v", path, err)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", path, err)
}
