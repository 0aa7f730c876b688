package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/veridex/internal/engine"
	"github.com/ppiankov/veridex/internal/model"
)

var (
	verifyStrategy string
	verifyURL      string
	verifyPlatform string
	verifyAuthor   string
	verifyTimeout  time.Duration
	verifyNoCache  bool
	verifyJSON     bool
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <text>",
	Short: "Verify a piece of text and print the verdict",
	Long: `Verify checks a piece of text for misinformation:
- Extracts candidate factual claims
- Picks a verification strategy (local, cloud or hybrid)
- Consults local knowledge and/or external fact-check providers
- Reconciles the answers into a single verdict with a confidence score

Example:
  veridex verify "The Earth is flat"
  veridex verify --strategy cloud "Drinking 8 glasses of water is required"
  veridex verify --json "Vaccines contain mercury"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyStrategy, "strategy", "hybrid", "verification strategy (local, cloud, hybrid)")
	verifyCmd.Flags().StringVar(&verifyURL, "url", "", "source URL of the text")
	verifyCmd.Flags().StringVar(&verifyPlatform, "platform", "", "source platform of the text")
	verifyCmd.Flags().StringVar(&verifyAuthor, "author", "", "author of the text")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 2*time.Minute, "overall verification timeout")
	verifyCmd.Flags().BoolVar(&verifyNoCache, "no-cache", false, "disable cache (force fresh verification)")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "print the full result as JSON")
}

func runVerify(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	cfg := loadConfig()
	if verifyNoCache {
		cfg.Cache.Enabled = false
	}

	eng, _, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	result := eng.Verify(ctx, engine.Request{
		Text:       text,
		URL:        verifyURL,
		Platform:   verifyPlatform,
		Author:     verifyAuthor,
		Preference: model.ParseStrategyHint(verifyStrategy),
	})

	if verifyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.ToResponse())
	}

	resp := result.ToResponse()
	fmt.Printf("Verdict:    %s\n", resp.Verdict)
	fmt.Printf("Confidence: %.2f%%\n", resp.Confidence)
	fmt.Printf("Strategy:   %s\n", resp.Strategy)
	fmt.Printf("Time:       %.3fs\n", resp.ProcessingTime)
	fmt.Printf("\n%s\n", resp.Explanation)

	if len(resp.Evidence) > 0 {
		fmt.Println("\nEvidence:")
		for _, e := range resp.Evidence {
			fmt.Printf("  - %s\n", e)
		}
	}
	if len(resp.Sources) > 0 {
		fmt.Printf("\nSources: %s\n", strings.Join(resp.Sources, ", "))
	}

	return nil
}
