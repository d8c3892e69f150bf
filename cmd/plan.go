package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yschiang/sampling-wizard/sampling"
	"github.com/yschiang/sampling-wizard/sampling/recipe"
	"github.com/yschiang/sampling-wizard/sampling/score"
	_ "github.com/yschiang/sampling-wizard/sampling/strategy"
)

var (
	// CLI flags for the plan subcommand
	requestFile  string // Path to the YAML request document
	withScore    bool   // Evaluate the plan after selection
	withRecipe   bool   // Translate the plan into a tool recipe
	prettyOutput bool   // Indent the JSON output
)

// PlanDocument is the YAML request document consumed by the plan command:
// the three context objects, the strategy to run, and its configuration.
type PlanDocument struct {
	WaferMap       sampling.WaferMapSpec      `yaml:"wafer_map"`
	ProcessContext sampling.ProcessContext    `yaml:"process_context"`
	ToolProfile    sampling.ToolProfile       `yaml:"tool_profile"`
	StrategyID     string                     `yaml:"sampling_strategy_id"`
	StrategyConfig sampling.RawStrategyConfig `yaml:"strategy_config"`
}

// PlanResult is the JSON document the plan command prints.
type PlanResult struct {
	Plan   *sampling.SelectResult `json:"plan"`
	Score  *score.Report          `json:"score,omitempty"`
	Recipe *recipe.ToolRecipe     `json:"recipe,omitempty"`
	Notes  []sampling.Warning     `json:"recipe_warnings,omitempty"`
}

// LoadPlanDocument parses a YAML request document from disk.
func LoadPlanDocument(path string) (PlanDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlanDocument{}, fmt.Errorf("read request document: %w", err)
	}
	var doc PlanDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return PlanDocument{}, fmt.Errorf("parse request document: %w", err)
	}
	return doc, nil
}

// planCmd runs the pipeline once against a request document and prints JSON
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a sampling plan from a YAML request document",
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := LoadPlanDocument(requestFile)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		result, err := runPlan(doc)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		enc := json.NewEncoder(os.Stdout)
		if prettyOutput {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(result); err != nil {
			logrus.Fatalf("encode result: %v", err)
		}
	},
}

func runPlan(doc PlanDocument) (PlanResult, error) {
	plan, err := sampling.Select(doc.WaferMap, doc.ProcessContext, doc.ToolProfile,
		doc.StrategyID, doc.StrategyConfig)
	if err != nil {
		return PlanResult{}, err
	}
	result := PlanResult{Plan: plan}

	var report *score.Report
	if withScore || withRecipe {
		evaluated, err := score.Evaluate(doc.WaferMap, doc.ProcessContext, doc.ToolProfile, plan.Output)
		if err != nil {
			return PlanResult{}, err
		}
		report = &evaluated
		if withScore {
			result.Score = report
		}
	}
	if withRecipe {
		toolRecipe, warnings, err := recipe.Translate(doc.WaferMap, doc.ToolProfile, plan.Output, report)
		if err != nil {
			return PlanResult{}, err
		}
		result.Recipe = &toolRecipe
		result.Notes = warnings
	}
	return result, nil
}

func init() {
	planCmd.Flags().StringVar(&requestFile, "request", "", "Path to the YAML request document")
	planCmd.Flags().BoolVar(&withScore, "score", false, "Evaluate the generated plan")
	planCmd.Flags().BoolVar(&withRecipe, "recipe", false, "Translate the plan into a tool recipe")
	planCmd.Flags().BoolVar(&prettyOutput, "pretty", true, "Indent the JSON output")
	_ = planCmd.MarkFlagRequired("request")

	rootCmd.AddCommand(planCmd)
}
