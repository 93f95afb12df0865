package core

import (
	"fmt"
	"log" // Usado para logs iniciais antes que o logger da aplicação esteja configurado
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config armazena todas as configurações da aplicação.
type Config struct {
	AppName    string
	AppVersion string
	AppDebug   bool

	// API remota de clientes (serviço externo)
	APIBaseURL string

	// Logging
	LogDir         string
	LogLevel       string
	LogMaxBytes    int
	LogBackupCount int
	LogToConsole   bool

	// Export
	ExportDir string
}

// LoadConfig carrega as configurações do arquivo .env especificado ou
// encontrado na árvore de diretórios, com fallback para variáveis de ambiente
// globais e defaults de desenvolvimento local.
func LoadConfig(envPath string) (*Config, error) {
	foundEnvPath, err := findEnvFile(envPath)
	if err != nil {
		log.Printf("Aviso: Arquivo .env em '%s' não encontrado: %v. Usando variáveis de ambiente globais.", envPath, err)
	} else {
		log.Printf("Carregando configurações de: %s", foundEnvPath)
		if err := godotenv.Load(foundEnvPath); err != nil {
			log.Printf("Aviso: Erro ao carregar arquivo .env de '%s': %v. Usando valores padrão ou variáveis existentes.", foundEnvPath, err)
		}
	}

	cfg := &Config{}

	cfg.AppName = getEnv("APP_NAME", "CND Monitoramento")
	cfg.AppVersion = getEnv("APP_VERSION", "1.0.0")
	cfg.AppDebug = getEnvAsBool("APP_DEBUG", false)

	// Mesmo fallback de desenvolvimento local usado pelo backend de clientes.
	cfg.APIBaseURL = strings.TrimRight(getEnv("APP_API_BASE_URL", "http://localhost:8080"), "/")

	cfg.LogDir = getEnv("APP_LOG_DIR", "./app_logs")
	cfg.LogLevel = strings.ToUpper(getEnv("APP_LOG_LEVEL", "INFO"))
	cfg.LogMaxBytes = getEnvAsInt("APP_LOG_MAX_BYTES", 5*1024*1024) // 5MB
	cfg.LogBackupCount = getEnvAsInt("APP_LOG_BACKUP_COUNT", 7)
	cfg.LogToConsole = getEnvAsBool("APP_LOG_TO_CONSOLE", true)

	cfg.ExportDir = getEnv("APP_EXPORT_DIR", "./app_exports")

	if cfg.APIBaseURL == "" {
		return nil, WrapErrorf(ErrConfiguration, "APP_API_BASE_URL não pode ser vazia")
	}

	// Garantir que diretórios essenciais existam. LogDir é crítico.
	if err := ensureDir(cfg.LogDir, true); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de log essencial '%s': %w", cfg.LogDir, err)
	}
	_ = ensureDir(cfg.ExportDir, false)

	log.Println("Configurações carregadas e validadas.")
	return cfg, nil
}

// findEnvFile tenta localizar o arquivo .env: primeiro no path fornecido,
// depois subindo na árvore de diretórios a partir do CWD (máximo 5 níveis).
func findEnvFile(envPath string) (string, error) {
	if _, err := os.Stat(envPath); err == nil {
		absPath, _ := filepath.Abs(envPath)
		return absPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("não foi possível obter o diretório de trabalho atual: %w", err)
	}

	for i := 0; i < 5; i++ {
		tryPath := filepath.Join(cwd, ".env")
		if _, err := os.Stat(tryPath); err == nil {
			return tryPath, nil
		}
		parent := filepath.Dir(cwd)
		if parent == cwd { // Chegou à raiz
			break
		}
		cwd = parent
	}
	return "", fmt.Errorf("arquivo .env não encontrado no caminho '%s' ou nos diretórios pais", envPath)
}

// ensureDir garante que um diretório exista, criando-o se necessário.
// Se 'critical' for true, retorna erro em caso de falha; caso contrário,
// apenas loga um aviso.
func ensureDir(dirPath string, critical bool) error {
	absPath, err := filepath.Abs(dirPath)
	if err == nil {
		err = os.MkdirAll(absPath, os.ModePerm)
	}
	if err != nil {
		msg := fmt.Sprintf("Não foi possível criar o diretório '%s': %v", dirPath, err)
		if critical {
			log.Println("ERRO CRÍTICO:", msg)
			return WrapErrorf(ErrConfiguration, msg)
		}
		log.Println("AVISO:", msg)
	}
	return nil
}

// getEnv recupera o valor de uma variável de ambiente ou retorna um fallback.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt recupera uma variável de ambiente como int ou retorna um fallback.
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// getEnvAsBool recupera uma variável de ambiente como bool ou retorna um fallback.
func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
