package mcp

import (
	"fmt"
	"strings"

	ai "github.com/spetersoncode/imagegen"
	"github.com/spetersoncode/imagegen/client"
	"github.com/spetersoncode/imagegen/model"
)

// setupHints tells the user how to enable each backend.
var setupHints = map[ai.Backend]string{
	ai.BackendDallE:         "Set OPENAI_API_KEY for DALL-E",
	ai.BackendStability:     "Set STABILITY_API_KEY for Stability AI",
	ai.BackendAutomatic1111: "Start Automatic1111 server for local generation",
}

func formatResult(prompt string, res *ai.Result) string {
	var b strings.Builder
	b.WriteString("**Image Generated Successfully!**\n\n")
	fmt.Fprintf(&b, "**Prompt:** %s\n", prompt)
	fmt.Fprintf(&b, "**Backend:** %s\n", res.Backend)
	fmt.Fprintf(&b, "**Cost:** %s\n\n", res.Cost)

	if res.RevisedPrompt != "" {
		fmt.Fprintf(&b, "**Revised Prompt:** %s\n\n", res.RevisedPrompt)
	}

	switch {
	case res.Image.IsRemote():
		fmt.Fprintf(&b, "**Image URL:** %s\n", res.Image.URL)
	case res.Image.IsInline():
		b.WriteString("**Image:** Generated successfully (base64 data available)\n")
		fmt.Fprintf(&b, "**Size:** %d characters\n", len(res.Image.Base64))
	}

	b.WriteString("\n**Tip:** Save the image from the URL or decode the base64 data to view it.")
	return b.String()
}

func formatBackends(statuses []client.BackendStatus) string {
	var b strings.Builder
	b.WriteString("**Available Image Generation Backends**\n\n")

	var hints []string
	for _, st := range statuses {
		mark := "[available]"
		if !st.Usable {
			mark = "[unavailable]"
			if h, ok := setupHints[st.Backend]; ok {
				hints = append(hints, h)
			}
		}
		caps := st.Model.Capabilities()

		fmt.Fprintf(&b, "**%s** %s\n", st.Model.Name(), mark)
		fmt.Fprintf(&b, "   Status: %s\n", st.Reason)
		fmt.Fprintf(&b, "   Quality: %s\n", caps.QualityTier)
		fmt.Fprintf(&b, "   Cost: %s\n", st.Model.Pricing().Range())
		fmt.Fprintf(&b, "   Speed: %s\n\n", caps.SpeedTier)
	}

	if len(hints) > 0 {
		b.WriteString("**Setup Instructions:**\n")
		for _, h := range hints {
			fmt.Fprintf(&b, "   - %s\n", h)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatEstimate(est model.CostEstimate) string {
	var b strings.Builder
	b.WriteString("**Cost Estimate**\n\n")
	fmt.Fprintf(&b, "**Backend:** %s\n", est.Description)
	fmt.Fprintf(&b, "**Cost per image:** %s\n", est.PerImage)
	fmt.Fprintf(&b, "**Cost for 10 images:** $%.2f\n", est.Per10.Dollars())
	fmt.Fprintf(&b, "**Cost for 100 images:** $%.2f\n\n", est.Per100.Dollars())
	b.WriteString("**Note:** Costs are approximate and may vary.")
	return b.String()
}
