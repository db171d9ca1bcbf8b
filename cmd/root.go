// Package cmd implements the server entry point and the client CLI for
// the fixed-versions service.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hadeel-ghalieah/vulnerabilities/config"
	"github.com/hadeel-ghalieah/vulnerabilities/model"
	"github.com/hadeel-ghalieah/vulnerabilities/osv"
	"github.com/hadeel-ghalieah/vulnerabilities/restapi"
	"github.com/hadeel-ghalieah/vulnerabilities/util"
)

var (
	serverURL  string
	ecosystems []string
	verbose    bool
)

var logger = util.InitLogger()

// rootCmd starts the API server when invoked without a subcommand
var rootCmd = &cobra.Command{
	Use:   "vulnerabilities",
	Short: "Fixed-versions lookup service backed by the OSV database",
	Long: `Serves an HTTP API that queries the Open Source Vulnerabilities
database for the fixed versions of a package across one or more
ecosystems. The query and check subcommands talk to a running server.`,
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://127.0.0.1:8000", "API server URL for client commands")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client := osv.NewClient(cfg.OSVAPIURL)

	app, err := restapi.NewFiberApp(cfg, client)
	if err != nil {
		return fmt.Errorf("failed to build API server: %w", err)
	}

	logger.Sugar().Infof("Starting server on %s", cfg.ListenAddr)
	return app.Listen(cfg.ListenAddr)
}

// queryCmd fetches fixed versions from a running server
var queryCmd = &cobra.Command{
	Use:   "query [name]",
	Short: "List the fixed versions recorded for a package",
	Long: `Queries a running server for every fixed version recorded across
the requested ecosystems and prints them in ascending order.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringSliceVarP(&ecosystems, "ecosystems", "e", nil, "Ecosystems to query (default Ubuntu)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	result, err := fetchFixedVersions(args[0])
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Queried at: %s\n", result.Timestamp)
	}

	fmt.Printf("Found %d fixed version(s) for %s:\n\n", len(result.Versions), result.Name)
	for _, version := range result.Versions {
		fmt.Println(version)
	}
	return nil
}

// checkCmd reports which fixed versions are upgrades over an installed version
var checkCmd = &cobra.Command{
	Use:   "check [name] [installed-version]",
	Short: "Show fixed versions newer than an installed version",
	Long: `Queries a running server and reports the fixed versions that are
strictly greater than the given installed version. Versions that do not
parse as semver are compared as strings.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringSliceVarP(&ecosystems, "ecosystems", "e", nil, "Ecosystems to query (default Ubuntu)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, installed := args[0], args[1]

	result, err := fetchFixedVersions(name)
	if err != nil {
		return err
	}

	upgrades := util.UpgradesFrom(installed, result.Versions)
	if len(upgrades) == 0 {
		fmt.Printf("%s %s is at or above every recorded fix\n", name, installed)
		return nil
	}

	fmt.Printf("%d fix(es) above %s %s:\n\n", len(upgrades), name, installed)
	for _, version := range upgrades {
		fmt.Println(version)
	}
	return nil
}

func fetchFixedVersions(name string) (*model.FixedVersionsResponse, error) {
	params := url.Values{}
	params.Set("name", name)
	for _, ecosystem := range ecosystems {
		params.Add("ecosystems", ecosystem)
	}

	endpoint := fmt.Sprintf("%s/fixed-versions?%s", serverURL, params.Encode())
	if verbose {
		fmt.Printf("GET %s\n", endpoint)
	}

	resp, err := http.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no fixed versions found for %s", name)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	var result model.FixedVersionsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &result, nil
}
