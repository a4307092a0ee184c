// Smoke test manual contra un servidor corriendo: status, metadata,
// login y un listado autenticado. No reemplaza los tests unitarios;
// sirve para validar un despliegue completo con base real.
//
//	VIGILIA_URL=http://localhost:8080 \
//	VIGILIA_SMOKE_EMAIL=admin@vigilia.cl \
//	VIGILIA_SMOKE_PASSWORD=********  go run ./test/integration/api-smoke
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

var base = envOr("VIGILIA_URL", "http://localhost:8080")

func main() {
	fmt.Println("🧪 Smoke test contra", base)

	mustGet("/api/status", "")
	mustGet("/api/metadata", "")
	mustGet("/healthz", "")

	email := os.Getenv("VIGILIA_SMOKE_EMAIL")
	pass := os.Getenv("VIGILIA_SMOKE_PASSWORD")
	if email == "" || pass == "" {
		fmt.Println("⚠️  sin VIGILIA_SMOKE_EMAIL/PASSWORD: se omite la parte autenticada")
		fmt.Println("✅ endpoints públicos OK")
		return
	}

	token := login(email, pass)
	mustGet("/api/usuarios/", token)
	mustGet("/api/eventos/", token)

	fmt.Println("✅ smoke test completo OK")
}

func login(email, pass string) string {
	body, _ := json.Marshal(map[string]string{"email": email, "password": pass})
	resp, err := client().Post(base+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		fail("login: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fail("login: status=%d body=%s", resp.StatusCode, string(b))
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(b, &out); err != nil || out.Token == "" {
		fail("login: respuesta sin token: %s", string(b))
	}
	fmt.Println("   🔑 login OK")
	return out.Token
}

func mustGet(path, token string) {
	req, _ := http.NewRequest(http.MethodGet, base+path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client().Do(req)
	if err != nil {
		fail("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fail("GET %s: status=%d body=%s", path, resp.StatusCode, string(b))
	}
	fmt.Printf("   ✅ GET %s\n", path)
}

func client() *http.Client { return &http.Client{Timeout: 10 * time.Second} }

func fail(format string, args ...any) {
	fmt.Printf("❌ "+format+"\n", args...)
	os.Exit(1)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
