package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	addr   string
	apiKey string
)

func main() {
	root := &cobra.Command{
		Use:   "orevaultctl",
		Short: "OreVault admin CLI",
		Long:  "orevaultctl — admin client for a running OreVault service.",
	}

	root.PersistentFlags().StringVar(&addr, "addr", "http://localhost:8080", "service base URL")
	root.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("API_KEY"), "API key (defaults to API_KEY env var)")

	root.AddCommand(statsCmd(), toggleCmd(), boostCmd(), unboostCmd(), multiplierCmd(), reloadCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// ── stats command ──

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <player>",
		Short: "Show a player's mining statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
}

func runStats(_ *cobra.Command, args []string) error {
	playerID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	var summary struct {
		TotalMined   int64   `json:"total_mined"`
		TotalEarned  float64 `json:"total_earned"`
		MostMinedOre string  `json:"most_mined_ore"`
		Ores         map[string]struct {
			TimesMined   int64   `json:"times_mined"`
			AmountEarned float64 `json:"amount_earned"`
		} `json:"ores"`
	}
	if err := request(http.MethodGet, fmt.Sprintf("/api/v1/players/%s/stats", playerID), nil, &summary); err != nil {
		return err
	}

	fmt.Printf("Total mined:  %d\n", summary.TotalMined)
	fmt.Printf("Total earned: %.2f\n", summary.TotalEarned)
	fmt.Printf("Most mined:   %s\n", summary.MostMinedOre)
	for ore, entry := range summary.Ores {
		fmt.Printf("  %-24s %6d mined  %10.2f earned\n", ore, entry.TimesMined, entry.AmountEarned)
	}
	return nil
}

// ── toggle command ──

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <player> on|off",
		Short: "Enable or disable a player's rewards",
		Args:  cobra.ExactArgs(2),
		RunE:  runToggle,
	}
}

func runToggle(_ *cobra.Command, args []string) error {
	playerID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	var enabled bool
	switch args[1] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[1])
	}

	body := map[string]bool{"enabled": enabled}
	if err := request(http.MethodPut, fmt.Sprintf("/api/v1/players/%s/settings/rewards", playerID), body, nil); err != nil {
		return err
	}

	fmt.Printf("Rewards for %s: %s\n", playerID, args[1])
	return nil
}

// ── boost command ──

func boostCmd() *cobra.Command {
	var duration int64

	cmd := &cobra.Command{
		Use:   "boost <player> <value>",
		Short: "Grant a temporary multiplier",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			playerID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid player id: %w", err)
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid multiplier value: %w", err)
			}

			body := map[string]any{"value": value, "duration_seconds": duration}
			if err := request(http.MethodPost, fmt.Sprintf("/api/v1/players/%s/multipliers/temporary", playerID), body, nil); err != nil {
				return err
			}

			if duration > 0 {
				fmt.Printf("Granted %.2fx to %s for %ds\n", value, playerID, duration)
			} else {
				fmt.Printf("Granted %.2fx to %s permanently\n", value, playerID)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&duration, "duration", 0, "duration in seconds, 0 for permanent")
	return cmd
}

// ── unboost command ──

func unboostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unboost <player>",
		Short: "Revoke a temporary multiplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			playerID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid player id: %w", err)
			}

			if err := request(http.MethodDelete, fmt.Sprintf("/api/v1/players/%s/multipliers/temporary", playerID), nil, nil); err != nil {
				return err
			}

			fmt.Printf("Revoked multiplier for %s\n", playerID)
			return nil
		},
	}
}

// ── multiplier command ──

func multiplierCmd() *cobra.Command {
	var world string
	var perms []string

	cmd := &cobra.Command{
		Use:   "multiplier <player>",
		Short: "Show a player's effective multiplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			playerID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid player id: %w", err)
			}

			q := url.Values{}
			q.Set("world", world)
			for _, p := range perms {
				q.Add("perm", p)
			}

			var resp struct {
				Multiplier float64 `json:"multiplier"`
			}
			path := fmt.Sprintf("/api/v1/players/%s/multiplier?%s", playerID, q.Encode())
			if err := request(http.MethodGet, path, nil, &resp); err != nil {
				return err
			}

			fmt.Printf("Effective multiplier: %.2fx\n", resp.Multiplier)
			return nil
		},
	}

	cmd.Flags().StringVar(&world, "world", "", "world name")
	cmd.Flags().StringArrayVar(&perms, "perm", nil, "permission node (repeatable)")
	return cmd
}

// ── reload command ──

func reloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload service configuration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := request(http.MethodPost, "/api/v1/admin/reload", nil, nil); err != nil {
				return err
			}
			fmt.Println("Configuration reloaded")
			return nil
		},
	}
}

// request performs one API call and decodes the response into out when
// out is non-nil.
func request(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, addr+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
