// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categories": {
            "get": {
                "description": "Returns the categories in voting order.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lists voting categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/categories/{id}/candidates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lists the candidates of a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Lists candidate regions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/sessions": {
            "post": {
                "description": "Creates an anonymous session and sets the ` + "`" + `session_token` + "`" + ` cookie used by ` + "`" + `/ballot` + "`" + ` calls.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Starts a voting session",
                "responses": {"201": {"description": "Created"}}
            },
            "delete": {
                "description": "Discards the ballot and clears the ` + "`" + `session_token` + "`" + ` cookie.",
                "tags": ["sessions"],
                "summary": "Ends the session",
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/sessions/login": {
            "post": {
                "description": "Marks the session as authenticated so it may vote.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Logs the session in",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/sessions/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Logs the session out",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/ballot": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ballot"],
                "summary": "Shows the session's voting progress",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/ballot/cursor": {
            "put": {
                "description": "Out-of-range indices leave the ballot unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ballot"],
                "summary": "Jumps to a category",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/ballot/filter": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ballot"],
                "summary": "Sets the candidate search and region filter",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/ballot/candidates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ballot"],
                "summary": "Lists the active category's candidates after filtering",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/ballot/votes": {
            "post": {
                "description": "Replaces any earlier vote in the same category. Requires a logged-in session.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ballot"],
                "summary": "Votes in the active category",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/donations": {
            "post": {
                "description": "No payment is collected; the donation is processed after a short simulated delay.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["donations"],
                "summary": "Donates to the prize pool",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/donations/pool": {
            "get": {
                "produces": ["application/json"],
                "tags": ["donations"],
                "summary": "Shows the prize pool",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/dashboard": {
            "get": {
                "description": "Figures come from mock aggregates, not from live ballots.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Shows the admin dashboard",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/export": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["admin"],
                "summary": "Exports vote tallies",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Organizer Awards API",
	Description:      "Voting flow, prize pool donations and admin dashboard for the organizer awards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
