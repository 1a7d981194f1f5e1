package v1

import "github.com/shenikar/traffic_ops_console/internal/models"

func toUnitResponse(u *models.Unit) *UnitResponse {
	return &UnitResponse{
		ID:       u.ID,
		Name:     u.Name,
		Type:     u.Type,
		Status:   u.Status,
		Location: u.Location,
	}
}

func toUnitResponses(units []*models.Unit) []*UnitResponse {
	out := make([]*UnitResponse, len(units))
	for i, u := range units {
		out[i] = toUnitResponse(u)
	}
	return out
}

func toIncidentResponse(i *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:               i.ID,
		Type:             i.Type,
		Severity:         i.Severity,
		Location:         i.Location,
		Status:           i.Status,
		ReportedAt:       i.ReportedAt,
		AssignedUnitID:   i.AssignedUnitID,
		AssignedUnitName: i.AssignedUnitName,
	}
}

func toIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	out := make([]*IncidentResponse, len(incidents))
	for i, inc := range incidents {
		out[i] = toIncidentResponse(inc)
	}
	return out
}

func toAlertResponse(a *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:        a.ID,
		Title:     a.Title,
		Detail:    a.Detail,
		Level:     a.Level,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

func toAlertResponses(alerts []*models.Alert) []*AlertResponse {
	out := make([]*AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = toAlertResponse(a)
	}
	return out
}

func toCameraResponse(c *models.Camera) *CameraResponse {
	return &CameraResponse{
		ID:       c.ID,
		Name:     c.Name,
		Status:   c.Status,
		Img:      c.Img,
		Location: c.Location,
	}
}

func toCameraResponses(cameras []*models.Camera) []*CameraResponse {
	out := make([]*CameraResponse, len(cameras))
	for i, c := range cameras {
		out[i] = toCameraResponse(c)
	}
	return out
}

func toSignalResponse(s *models.Signal) *SignalResponse {
	return &SignalResponse{
		ID:           s.ID,
		Name:         s.Name,
		Location:     s.Location,
		CurrentState: s.CurrentState,
		Mode:         s.Mode,
		Timing:       TimingResponse{Red: s.Timing.Red, Yellow: s.Timing.Yellow, Green: s.Timing.Green},
		LastUpdated:  s.LastUpdated,
	}
}

func toSignalResponses(signals []*models.Signal) []*SignalResponse {
	out := make([]*SignalResponse, len(signals))
	for i, s := range signals {
		out[i] = toSignalResponse(s)
	}
	return out
}

func toTrafficDataResponse(td *models.TrafficData) *TrafficDataResponse {
	return &TrafficDataResponse{
		ID:              td.ID,
		Location:        td.Location,
		AvgSpeed:        td.AvgSpeed,
		VehicleCount:    td.VehicleCount,
		CongestionLevel: td.CongestionLevel,
		Timestamp:       td.Timestamp,
	}
}

func toTrafficDataResponses(readings []*models.TrafficData) []*TrafficDataResponse {
	out := make([]*TrafficDataResponse, len(readings))
	for i, td := range readings {
		out[i] = toTrafficDataResponse(td)
	}
	return out
}

func toKPIResponse(snap *models.KPISnapshot) *KPIResponse {
	return &KPIResponse{
		AvgSpeed:        snap.AvgSpeed,
		IncidentsToday:  snap.IncidentsToday,
		CongestionLevel: snap.CongestionLevel,
		CamerasOnline:   snap.CamerasOnline,
		CamerasTotal:    snap.CamerasTotal,
	}
}

func toTimingModel(t *TimingRequest) *models.SignalTiming {
	if t == nil {
		return nil
	}
	return &models.SignalTiming{Red: t.Red, Yellow: t.Yellow, Green: t.Green}
}
