package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/findy-network/findy-fixture/agent/utils"
	"github.com/findy-network/findy-fixture/cmds"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FFIX"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: utils.Version,
	Use:     "findy-fixture",
	Short:   "Findy test fixture tool",
	Long: `
Findy test fixture tool provisions wallets, pools, DIDs and keys for tests and
cleans up what crashed test runs left behind.
	`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmds.ParseLoggingArgs(rootFlags.logging)
		handleViperFlags(cmd)
		applySettings()
	},
}

// Execute root
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// To fix errors printed twice removing the cobra generators next
		// see: https://github.com/spf13/cobra/issues/304
		// fmt.Println(err)

		os.Exit(1)
	}
}

// RootFlags are the common flags
type RootFlags struct {
	cfgFile         string
	dryRun          bool
	logging         string
	backend         string
	baseDir         string
	walletKey       string
	genesisTxnFile  string
	protocolVersion uint64
}

var rootFlags = RootFlags{}

var rootEnvs = map[string]string{
	"config":           "CONFIG",
	"logging":          "LOGGING",
	"dry-run":          "DRY_RUN",
	"backend":          "BACKEND",
	"base-dir":         "BASE_DIR",
	"wallet-key":       "WALLET_KEY",
	"genesis-txn-file": "GENESIS_TXN_FILE",
	"protocol-version": "PROTOCOL_VERSION",
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.cfgFile, "config", "", flagInfo("configuration file", "", rootEnvs["config"]))
	flags.StringVar(&rootFlags.logging, "logging", "-logtostderr=true -v=2", flagInfo("logging startup arguments", "", rootEnvs["logging"]))
	flags.BoolVarP(&rootFlags.dryRun, "dry-run", "n", false, flagInfo("perform a trial run with no changes made", "", rootEnvs["dry-run"]))
	flags.StringVar(&rootFlags.backend, "backend", cmds.BackendNative, flagInfo("fixture backend: "+strings.Join(cmds.Backends(), ", "), "", rootEnvs["backend"]))
	flags.StringVar(&rootFlags.baseDir, "base-dir", "", flagInfo("base dir of the storage, home dir by default", "", rootEnvs["base-dir"]))
	flags.StringVar(&rootFlags.walletKey, "wallet-key", "", flagInfo("wallet key of the fixture wallets", "", rootEnvs["wallet-key"]))
	flags.StringVar(&rootFlags.genesisTxnFile, "genesis-txn-file", "", flagInfo("genesis transactions file of the pools", "", rootEnvs["genesis-txn-file"]))
	flags.Uint64Var(&rootFlags.protocolVersion, "protocol-version", 2, flagInfo("pool protocol version", "", rootEnvs["protocol-version"]))

	for flagKey := range rootEnvs {
		if flagKey == "config" {
			continue
		}
		try.To(viper.BindPFlag(flagKey, flags.Lookup(flagKey)))
	}

	try.To(BindEnvs(rootEnvs, ""))
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)
	readConfigFile()
	readBoundRootFlags()
}

func readBoundRootFlags() {
	rootFlags.logging = viper.GetString("logging")
	rootFlags.dryRun = viper.GetBool("dry-run")
	rootFlags.backend = viper.GetString("backend")
	rootFlags.baseDir = viper.GetString("base-dir")
	rootFlags.walletKey = viper.GetString("wallet-key")
	rootFlags.genesisTxnFile = viper.GetString("genesis-txn-file")
	rootFlags.protocolVersion = viper.GetUint64("protocol-version")
}

// applySettings moves the root flags to utils.Settings which the fixture
// services read.
func applySettings() {
	if rootFlags.baseDir != "" {
		utils.Settings.SetBaseDir(rootFlags.baseDir)
	}
	if rootFlags.walletKey != "" {
		utils.Settings.SetWalletKey(rootFlags.walletKey)
	}
	utils.Settings.SetGenesisTxnFile(rootFlags.genesisTxnFile)
	utils.Settings.SetProtocolVersion(rootFlags.protocolVersion)
}

func readConfigFile() {
	cfgEnv := os.Getenv(getEnvName("", "config"))
	if rootFlags.cfgFile != "" || cfgEnv != "" {
		printInfo := true
		if rootFlags.cfgFile == "" {
			rootFlags.cfgFile = cfgEnv
			printInfo = false
		}
		viper.SetConfigFile(rootFlags.cfgFile)
		// If a config file is found, read it in.
		if err := viper.ReadInConfig(); err == nil && printInfo {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

// BindEnvs calls viper.BindEnv with envMap and cmdName which can be empty if
// flag is general.
func BindEnvs(envMap map[string]string, cmdName string) (err error) {
	defer err2.Handle(&err)
	for flagKey, envName := range envMap {
		finalEnvName := getEnvName(cmdName, envName)
		try.To(viper.BindEnv(flagKey, finalEnvName))
	}
	return nil
}

func flagInfo(info, cmdPrefix, envName string) string {
	return info + ", " + getEnvName(cmdPrefix, envName)
}

func getEnvName(cmdName, envName string) string {
	if cmdName == "" {
		return envPrefix + "_" + strings.ToUpper(envName)
	}
	return envPrefix + "_" + strings.ToUpper(cmdName) + "_" + envName
}

func handleViperFlags(cmd *cobra.Command) {
	setRequiredStringFlags(cmd)
	if cmd.HasParent() {
		handleViperFlags(cmd.Parent())
	}
}

func setRequiredStringFlags(cmd *cobra.Command) {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	try.To(viper.BindPFlags(cmd.LocalFlags()))
	if cmd.PreRunE != nil {
		try.To(cmd.PreRunE(cmd, nil))
	}
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if viper.GetString(f.Name) != "" {
			try.To(cmd.LocalFlags().Set(f.Name, viper.GetString(f.Name)))
		}
	})
}
