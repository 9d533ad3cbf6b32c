// @title           babygrow API
// @version         1.0
// @description     API дневника развития ребенка и родительского сообщества.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "babygrow_backend/internal/app"

func main() {
	app.Run()
}
