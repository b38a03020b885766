// Package graph exposes the admin data as a read-only GraphQL endpoint,
// so dashboard widgets can fetch exactly the fields they render in one
// round trip.
package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/response"
)

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stats",
	Fields: graphql.Fields{
		"revenue":          &graphql.Field{Type: graphql.Float},
		"totalBookings":    &graphql.Field{Type: graphql.Int},
		"activeUsers":      &graphql.Field{Type: graphql.Int},
		"pendingInquiries": &graphql.Field{Type: graphql.Int},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.Int},
		"name":  &graphql.Field{Type: graphql.String},
		"email": &graphql.Field{Type: graphql.String},
		"role":  &graphql.Field{Type: graphql.String},
	},
})

var bookingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Booking",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int},
		"userId":      &graphql.Field{Type: graphql.Int},
		"destination": &graphql.Field{Type: graphql.String},
		"travelDate":  &graphql.Field{Type: graphql.String},
		"travelers":   &graphql.Field{Type: graphql.Int},
		"total":       &graphql.Field{Type: graphql.Float},
		"status":      &graphql.Field{Type: graphql.String},
		"duration":    &graphql.Field{Type: graphql.String},
		"userName":    &graphql.Field{Type: graphql.String},
		"userEmail":   &graphql.Field{Type: graphql.String},
	},
})

var messageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ContactMessage",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.Int},
		"name":    &graphql.Field{Type: graphql.String},
		"email":   &graphql.Field{Type: graphql.String},
		"subject": &graphql.Field{Type: graphql.String},
		"message": &graphql.Field{Type: graphql.String},
		"status":  &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the admin query schema over the given services.
func NewSchema(
	admin *services.AdminService,
	bookings *services.BookingService,
	messages *services.MessageService,
) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"stats": &graphql.Field{
				Type: statsType,
				Resolve: func(graphql.ResolveParams) (any, error) {
					s, err := admin.GetStats()
					if err != nil {
						return nil, err
					}
					return map[string]any{
						"revenue":          s.Revenue,
						"totalBookings":    s.TotalBookings,
						"activeUsers":      s.ActiveUsers,
						"pendingInquiries": s.PendingInquiries,
					}, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(graphql.ResolveParams) (any, error) {
					list, err := admin.AllUsers()
					if err != nil {
						return nil, err
					}
					out := make([]map[string]any, len(list))
					for i, u := range list {
						out[i] = map[string]any{
							"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role,
						}
					}
					return out, nil
				},
			},
			"bookings": &graphql.Field{
				Type: graphql.NewList(bookingType),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					list, err := bookings.AllWithUsers()
					if err != nil {
						return nil, err
					}
					status, _ := p.Args["status"].(string)
					out := make([]map[string]any, 0, len(list))
					for _, b := range list {
						if status != "" && b.Status != status {
							continue
						}
						out = append(out, bookingRow(b))
					}
					return out, nil
				},
			},
			"messages": &graphql.Field{
				Type: graphql.NewList(messageType),
				Resolve: func(graphql.ResolveParams) (any, error) {
					list, err := messages.All()
					if err != nil {
						return nil, err
					}
					out := make([]map[string]any, len(list))
					for i, m := range list {
						out[i] = map[string]any{
							"id": m.ID, "name": m.Name, "email": m.Email,
							"subject": m.Subject, "message": m.Message, "status": m.Status,
						}
					}
					return out, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

func bookingRow(b models.BookingWithUser) map[string]any {
	return map[string]any{
		"id":          b.ID,
		"userId":      b.UserID,
		"destination": b.Destination,
		"travelDate":  b.TravelDate,
		"travelers":   b.Travelers,
		"total":       b.Total,
		"status":      b.Status,
		"duration":    b.Duration,
		"userName":    b.UserName,
		"userEmail":   b.UserEmail,
	}
}

// Handler serves POSTed GraphQL queries against schema.
func Handler(schema graphql.Schema) http.HandlerFunc {
	type request struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var body request
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid GraphQL request body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
