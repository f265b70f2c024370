package domain

type Booking struct {
	ID             string
	PassengerName  string
	PassengerEmail string
	Origin         string
	Destination    string
	TravelDate     string
	TrainID        string
}
