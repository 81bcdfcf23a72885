package handlers

import "log"

// SweepExpiredCredentials deletes stale password-reset OTPs and
// refresh-token rows whose embedded 7-day expiry has passed. Called
// periodically from the background worker in main; without it both
// tables grow forever.
func (h *Handlers) SweepExpiredCredentials() {
	result, err := h.DB.Exec(
		"DELETE FROM password_reset_otps WHERE createdAt < NOW() - INTERVAL ? MINUTE",
		otpTTLMinutes,
	)
	if err != nil {
		log.Printf("Error sweeping expired OTPs: %v", err)
	} else if n, _ := result.RowsAffected(); n > 0 {
		log.Printf("Swept %d expired OTP row(s)", n)
	}

	result, err = h.DB.Exec(
		"DELETE FROM refresh_tokens WHERE createdAt < NOW() - INTERVAL 7 DAY",
	)
	if err != nil {
		log.Printf("Error sweeping expired refresh tokens: %v", err)
	} else if n, _ := result.RowsAffected(); n > 0 {
		log.Printf("Swept %d expired refresh token row(s)", n)
	}
}
