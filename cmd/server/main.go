// @title        SUP Chat API
// @version      1.0
// @description  Chat persistence and model settings for the SUP Chat backend. Live messaging runs over the /socket websocket.
// @host         localhost:3000
// @BasePath     /api
package main

import (
	"os"

	"sup-chat/backend/internal/app"
)

func main() {
	os.Exit(app.Run())
}
