package handlers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/secureweb/secureweb/internal/plan"
)

// planView is the JSON shape of a plan preview. Generated credentials are
// omitted on purpose; a provisioning run generates fresh ones.
type planView struct {
	Project     string            `json:"project"`
	Environment string            `json:"environment"`
	Location    string            `json:"location"`
	Suffix      string            `json:"suffix"`
	Tags        map[string]string `json:"tags"`

	ResourceGroup  string `json:"resource_group"`
	StorageAccount string `json:"storage_account"`
	ServerName     string `json:"database_server"`
	DatabaseName   string `json:"database_name"`
	VaultName      string `json:"key_vault"`
	InsightsName   string `json:"app_insights"`
	PlanName       string `json:"app_service_plan"`
	WebAppName     string `json:"web_app"`
	SiteURL        string `json:"site_url"`

	DatabaseSKU string `json:"database_sku"`
	PlanSKU     string `json:"plan_sku"`
	Runtime     string `json:"runtime"`
	AdminUser   string `json:"admin_user"`
}

// Plan computes and prints the provisioning plan without creating anything.
func Plan(configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	p, err := newPlan(cfg)
	if err != nil {
		return err
	}

	if jsonOutput {
		b, err := json.MarshalIndent(buildPlanView(p), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}

	printPlanFormatted(p)
	return nil
}

func buildPlanView(p *plan.Plan) *planView {
	return &planView{
		Project:     p.Project,
		Environment: p.Environment,
		Location:    p.Location,
		Suffix:      p.Suffix,
		Tags:        p.Tags,

		ResourceGroup:  p.ResourceGroup,
		StorageAccount: p.StorageAccount,
		ServerName:     p.ServerName,
		DatabaseName:   p.DatabaseName,
		VaultName:      p.VaultName,
		InsightsName:   p.InsightsName,
		PlanName:       p.PlanName,
		WebAppName:     p.WebAppName,
		SiteURL:        p.SiteURL(),

		DatabaseSKU: p.DatabaseSKU,
		PlanSKU:     p.PlanSKU,
		Runtime:     p.LinuxFx,
		AdminUser:   p.AdminUser,
	}
}

// printPlanFormatted outputs the plan as an aligned text listing.
func printPlanFormatted(p *plan.Plan) {
	fmt.Println()
	title := fmt.Sprintf("secureweb plan: %s (%s)", p.Project, p.Environment)
	fmt.Printf("  %s\n", title)
	fmt.Println("  " + strings.Repeat("=", len(title)))
	fmt.Println()

	fmt.Printf("  Location: %s\n", p.Location)
	fmt.Printf("  Suffix:   %s (a real run derives its own)\n", p.Suffix)
	fmt.Println()

	fmt.Println("  Resources")
	fmt.Println("  " + strings.Repeat("-", 35))
	printPlanRow("resource group", p.ResourceGroup)
	printPlanRow("storage account", p.StorageAccount)
	printPlanRow("database server", p.ServerName)
	printPlanRow("database", p.DatabaseName)
	printPlanRow("key vault", p.VaultName)
	printPlanRow("app insights", p.InsightsName)
	printPlanRow("service plan", p.PlanName)
	printPlanRow("web app", p.WebAppName)
	printPlanRow("site url", p.SiteURL())
	fmt.Println()

	fmt.Println("  Sizing")
	fmt.Println("  " + strings.Repeat("-", 35))
	printPlanRow("database sku", fmt.Sprintf("%s (%s)", p.DatabaseSKU, p.DatabaseTier))
	printPlanRow("plan sku", fmt.Sprintf("%s (%s)", p.PlanSKU, p.PlanTier))
	printPlanRow("runtime", p.LinuxFx)
	printPlanRow("admin user", p.AdminUser)
	fmt.Println()

	fmt.Println("  Tags")
	fmt.Println("  " + strings.Repeat("-", 35))
	keys := make([]string, 0, len(p.Tags))
	for k := range p.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		printPlanRow(k, p.Tags[k])
	}
	fmt.Println()

	fmt.Println("  Credentials are generated fresh on 'secureweb provision'.")
	fmt.Println()
}

func printPlanRow(name, value string) {
	fmt.Printf("    %-18s %s\n", name, value)
}
