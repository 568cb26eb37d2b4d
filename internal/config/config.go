// Package config loads the optional defaults file: starting rates,
// GST and superannuation settings, and prefill text for the invoice
// detail fields.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shiftbill/internal/invoice"
)

type Config struct {
	Rates struct {
		Ordinary  float64 `yaml:"ordinary"`
		Afternoon float64 `yaml:"afternoon"`
		Saturday  float64 `yaml:"saturday"`
		Sunday    float64 `yaml:"sunday"`
	} `yaml:"rates"`

	GSTEnabled       bool    `yaml:"gst_enabled"`
	SuperRatePercent float64 `yaml:"super_rate_percent"`

	Details Details `yaml:"details"`
}

// Details prefills the free-text identity fields on the form. The
// core never validates these; they pass straight through to the
// rendered document.
type Details struct {
	BillCompany       string `yaml:"bill_company"`
	BillABN           string `yaml:"bill_abn"`
	ContractorName    string `yaml:"contractor_name"`
	ContractorAddress string `yaml:"contractor_address"`
	ContractorPhone   string `yaml:"contractor_phone"`
	ContractorABN     string `yaml:"contractor_abn"`
	SuperFundName     string `yaml:"super_fund_name"`
	SuperAccount      string `yaml:"super_account"`
	BankName          string `yaml:"bank_name"`
	BankAccountName   string `yaml:"bank_account_name"`
	BankBSB           string `yaml:"bank_bsb"`
	BankAccount       string `yaml:"bank_account"`
}

// Default is the configuration used when no file exists: empty rates
// and identity fields, GST off, and the current superannuation
// guarantee rate.
func Default() *Config {
	cfg := &Config{}
	cfg.SuperRatePercent = 12
	return cfg
}

// Load reads a YAML config file. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func (c *Config) RateTable() invoice.RateTable {
	return invoice.RateTable{
		invoice.CategoryOrdinary:  c.Rates.Ordinary,
		invoice.CategoryAfternoon: c.Rates.Afternoon,
		invoice.CategorySaturday:  c.Rates.Saturday,
		invoice.CategorySunday:    c.Rates.Sunday,
	}
}

func (c *Config) Adjustments() invoice.Adjustments {
	return invoice.Adjustments{
		GSTEnabled:       c.GSTEnabled,
		SuperRatePercent: c.SuperRatePercent,
	}
}
