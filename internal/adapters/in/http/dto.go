package http

import (
	"time"

	"eshift/internal/core/application/usecases/queries"
	"eshift/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Requests

type RegisterCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ProductRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	UnitWeightKg decimal.Decimal `json:"unitWeightKg"`
	Quantity     int             `json:"quantity"`
}

type LoadRequest struct {
	Description string           `json:"description"`
	WeightKg    decimal.Decimal  `json:"weightKg"`
	PickupDate  string           `json:"pickupDate"`
	Products    []ProductRequest `json:"products"`
}

type RequestJobRequest struct {
	CustomerID    string        `json:"customerId"`
	StartLocation string        `json:"startLocation"`
	Destination   string        `json:"destination"`
	JobDate       string        `json:"jobDate"`
	Loads         []LoadRequest `json:"loads"`
}

// UpdateJobDetailsRequest carries the version of the job the edit is based on.
type UpdateJobDetailsRequest struct {
	StartLocation string `json:"startLocation"`
	Destination   string `json:"destination"`
	JobDate       string `json:"jobDate"`
	Version       int    `json:"version"`
}

type JobStatusRequest struct {
	Status  string `json:"status"`
	Version int    `json:"version"`
}

type StatusRequest struct {
	Status       string `json:"status"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
}

type AssignTransportUnitRequest struct {
	TransportUnitID *string `json:"transportUnitId"`
}

type RegisterLorryRequest struct {
	NumberPlate string `json:"numberPlate"`
	Model       string `json:"model"`
}

type RegisterDriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone"`
}

type RegisterAssistantRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type RegisterContainerRequest struct {
	ContainerNumber string `json:"containerNumber"`
}

type CreateTransportUnitRequest struct {
	UnitNumber  string  `json:"unitNumber"`
	LorryID     string  `json:"lorryId"`
	DriverID    string  `json:"driverId"`
	AssistantID *string `json:"assistantId"`
	ContainerID string  `json:"containerId"`
}

// Responses

type CreatedResponse struct {
	ID string `json:"id"`
}

type JobSummaryResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	StartLocation string `json:"startLocation"`
	Destination   string `json:"destination"`
	JobDate       string `json:"jobDate"`
	Status        string `json:"status"`
	Version       int    `json:"version"`
	LoadCount     int    `json:"loadCount"`
}

type LoadProductResponse struct {
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	UnitWeightKg decimal.Decimal `json:"unitWeightKg"`
	Quantity     int             `json:"quantity"`
	IsValid      bool            `json:"isValid"`
}

type LoadResponse struct {
	ID              string                `json:"id"`
	LoadNumber      string                `json:"loadNumber"`
	TransportUnitID *string               `json:"transportUnitId"`
	Description     string                `json:"description"`
	WeightKg        decimal.Decimal       `json:"weightKg"`
	PickupDate      string                `json:"pickupDate"`
	DeliveryDate    *string               `json:"deliveryDate"`
	Status          string                `json:"status"`
	Version         int                   `json:"version"`
	Products        []LoadProductResponse `json:"products"`
}

type JobDetailsResponse struct {
	JobSummaryResponse
	Loads []LoadResponse `json:"loads"`
}

type JobPageResponse struct {
	Items    []JobSummaryResponse `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
	Pages    int                  `json:"pages"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	IsValid     bool            `json:"isValid"`
	Version     int             `json:"version"`
}

type DashboardResponse struct {
	TotalJobs      int64 `json:"totalJobs"`
	InProgressJobs int64 `json:"inProgressJobs"`
	CompletedJobs  int64 `json:"completedJobs"`
	CancelledJobs  int64 `json:"cancelledJobs"`
}

type TransportUnitResponse struct {
	ID              string  `json:"id"`
	UnitNumber      string  `json:"unitNumber"`
	LorryID         string  `json:"lorryId"`
	NumberPlate     string  `json:"numberPlate"`
	DriverID        string  `json:"driverId"`
	DriverName      string  `json:"driverName"`
	AssistantID     *string `json:"assistantId"`
	AssistantName   string  `json:"assistantName,omitempty"`
	ContainerID     string  `json:"containerId"`
	ContainerNumber string  `json:"containerNumber"`
	AssignedLoads   int     `json:"assignedLoads"`
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toJobSummaryResponse(s queries.JobSummary) JobSummaryResponse {
	return JobSummaryResponse{
		ID:            s.ID.String(),
		CustomerID:    s.CustomerID.String(),
		StartLocation: s.StartLocation,
		Destination:   s.Destination,
		JobDate:       s.JobDate.Format(time.DateOnly),
		Status:        s.Status.String(),
		Version:       s.Version,
		LoadCount:     s.LoadCount,
	}
}

func toJobSummaryResponses(items []queries.JobSummary) []JobSummaryResponse {
	out := make([]JobSummaryResponse, len(items))
	for i, s := range items {
		out[i] = toJobSummaryResponse(s)
	}
	return out
}

func toJobDetailsResponse(d queries.JobDetails) JobDetailsResponse {
	loads := make([]LoadResponse, len(d.Loads))
	for i, l := range d.Loads {
		products := make([]LoadProductResponse, len(l.Products))
		for k, p := range l.Products {
			products[k] = LoadProductResponse{
				ProductID:    p.ProductID.String(),
				Name:         p.Name,
				Category:     p.Category,
				UnitWeightKg: p.UnitWeightKg,
				Quantity:     p.Quantity,
				IsValid:      p.IsValid,
			}
		}
		var delivered *string
		if l.DeliveryDate != nil {
			s := l.DeliveryDate.Format(time.DateOnly)
			delivered = &s
		}
		loads[i] = LoadResponse{
			ID:              l.ID.String(),
			LoadNumber:      l.LoadNumber,
			TransportUnitID: optionalString(l.TransportUnitID),
			Description:     l.Description,
			WeightKg:        l.WeightKg,
			PickupDate:      l.PickupDate.Format(time.DateOnly),
			DeliveryDate:    delivered,
			Status:          l.Status.String(),
			Version:         l.Version,
			Products:        products,
		}
	}
	return JobDetailsResponse{JobSummaryResponse: toJobSummaryResponse(d.JobSummary), Loads: loads}
}

func toProductResponses(items []queries.ProductSummary) []ProductResponse {
	out := make([]ProductResponse, len(items))
	for i, p := range items {
		out[i] = ProductResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			WeightKg:    p.WeightKg,
			IsValid:     p.IsValid,
			Version:     p.Version,
		}
	}
	return out
}

func toTransportUnitResponses(items []queries.TransportUnitView) []TransportUnitResponse {
	out := make([]TransportUnitResponse, len(items))
	for i, u := range items {
		out[i] = TransportUnitResponse{
			ID:              u.ID.String(),
			UnitNumber:      u.UnitNumber,
			LorryID:         u.LorryID.String(),
			NumberPlate:     u.NumberPlate,
			DriverID:        u.DriverID.String(),
			DriverName:      u.DriverName,
			AssistantID:     optionalString(u.AssistantID),
			AssistantName:   u.AssistantName,
			ContainerID:     u.ContainerID.String(),
			ContainerNumber: u.ContainerNumber,
			AssignedLoads:   u.AssignedLoads,
		}
	}
	return out
}
