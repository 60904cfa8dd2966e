package constvars

const (
	ResponseUnknown = "unknown"

	// Auth
	RegisterSuccess = "account created successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Profile
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated"

	// Doctor
	DoctorListSuccess          = "get doctors successfully"
	AvailabilityChangedSuccess = "availability changed"
	DashboardGetSuccess        = "get dashboard successfully"

	// Appointment
	AppointmentBookedSuccess    = "appointment booked"
	AppointmentCancelledSuccess = "appointment cancelled"
	AppointmentCompletedSuccess = "appointment completed"
	AppointmentListSuccess      = "get appointments successfully"

	// Payment
	PaymentOrderCreatedSuccess = "payment order created"
	PaymentVerifiedSuccess     = "payment successful"
	PaymentNotCompletedMessage = "payment not completed"
)
