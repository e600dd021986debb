package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

type Secrets struct {
	GptApiKey      string    `json:"gpt"`
	CoinCapBaseUrl string    `json:"coinCapBaseUrl"`
	JwtSecret      string    `json:"jwtSecret"`
	LedgerCsvPath  string    `json:"ledgerCsvPath"`
	Supabase       DbSecrets `json:"supabase"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

// LoadSecrets reads the env-specific secrets file, then lets individual env
// vars override it. A missing file is not fatal - a deploy may configure
// everything through the environment.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("CRYPTO_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("CRYPTO_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}

	secrets := Secrets{}
	if f, err := os.ReadFile(secretsFile); err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	}

	if v := os.Getenv("GPT_API_KEY"); v != "" {
		secrets.GptApiKey = v
	}
	if v := os.Getenv("COINCAP_BASE_URL"); v != "" {
		secrets.CoinCapBaseUrl = v
	}
	if v := os.Getenv("SUPABASE_JWT_SECRET"); v != "" {
		secrets.JwtSecret = v
	}
	if v := os.Getenv("LEDGER_CSV_PATH"); v != "" {
		secrets.LedgerCsvPath = v
	}

	return &secrets, nil
}
