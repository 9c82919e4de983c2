package main

// General API documentation for swaggo.
//
// @title           wsld API
// @version         1.0
// @description     HTTP API for WSL-compatible distribution lifecycle management.
//
// @contact.name   wsld maintainers
// @contact.url    https://github.com/your-org/wsld
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
