package mail

import "fmt"

// EnrollmentSubject is the subject line for a successful course enrollment.
func EnrollmentSubject(courseName string) string {
	return fmt.Sprintf("Successfully Enrolled in %s", courseName)
}

// EnrollmentBody renders the course enrollment confirmation email.
func EnrollmentBody(courseName, studentName string) string {
	return fmt.Sprintf(`<html><body>
<h2>Course Registration Confirmation</h2>
<p>Dear %s,</p>
<p>You have successfully registered for the course <b>%s</b>.
Please log in to your dashboard to access the course material.</p>
<p>StudyPoint Team</p>
</body></html>`, studentName, courseName)
}

// PaymentReceiptSubject is the subject line for a payment confirmation.
const PaymentReceiptSubject = "Payment Received"

// PaymentReceiptBody renders the payment confirmation email. Amount is in
// paise and shown in rupees.
func PaymentReceiptBody(studentName string, amount int64, orderID, paymentID string) string {
	return fmt.Sprintf(`<html><body>
<h2>Course Payment Confirmation</h2>
<p>Dear %s,</p>
<p>We have received a payment of <b>Rs. %d</b>.</p>
<p>Your order ID is %s and payment ID is %s.</p>
<p>StudyPoint Team</p>
</body></html>`, studentName, amount/100, orderID, paymentID)
}
