// Command token mints an operator access token for the API.
//
//	go run ./cmd/token -name front-desk -permissions manage-receipts,print
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nilkanthplet/BP-1.0/internal/config"
	"github.com/nilkanthplet/BP-1.0/internal/presentation/http/middleware"
	"github.com/nilkanthplet/BP-1.0/pkg/utils"
)

func main() {
	name := flag.String("name", "operator", "operator name stored in the token")
	id := flag.String("id", "", "operator id (a new one is generated when empty)")
	permissions := flag.String("permissions", "", "comma separated permissions (all when empty)")
	ttl := flag.Duration("ttl", 0, "token lifetime (JWT_EXPIRY_HOURS when zero)")
	flag.Parse()

	cfg := config.Load()

	operatorID := uuid.New()
	if *id != "" {
		parsed, err := uuid.Parse(*id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid operator id: %v\n", err)
			os.Exit(1)
		}
		operatorID = parsed
	}

	granted := middleware.AllPermissions
	if *permissions != "" {
		granted = nil
		for _, p := range strings.Split(*permissions, ",") {
			if p = strings.TrimSpace(p); p != "" {
				granted = append(granted, p)
			}
		}
	}

	expiry := cfg.JWT.ExpiryHours
	if *ttl > 0 {
		expiry = *ttl
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	token, err := utils.NewJWTManager(cfg.JWT.Secret, expiry).GenerateAccessToken(operatorID, *name, granted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
