package dto

type CallsignResponse struct {
	Callsign string `json:"callsign"`
	Prefix   string `json:"prefix"`
	Country  string `json:"country"`
}
