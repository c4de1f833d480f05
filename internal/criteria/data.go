package criteria

// Default returns the rubric currently in force. The contents mirror the
// official evaluation form; the catalog is fixed at build time and is not
// editable through the API.
func Default() *Catalog {
	c, err := New(defaultRows)
	if err != nil {
		panic(err) // the table below is static; a bad row is a programming error
	}
	return c
}

var defaultRows = []Criterion{
	// Phần I: ý thức học tập
	{ID: "I", Content: "I. Đánh giá về ý thức tham gia học tập", Max: 20},
	{ID: "I.1", Content: "1. Kết quả học tập (TB: 2đ, Khá: 3đ, Giỏi: 4đ, Xuất sắc: 5đ)", Max: 5, Parent: "I"},
	{ID: "I.2", Content: "2. Có giấy chứng nhận tham gia lớp kỹ năng học tập", Max: 3, Parent: "I"},
	{ID: "I.3", Content: "3. Tham gia Hội thảo / Tọa đàm (3đ/lần)", Max: 10, Parent: "I"},
	{ID: "I.4", Content: "4. Thi học thuật cấp Khoa/Trường (Tham gia: 3đ, Giải: 4-7đ)", Max: 7, Parent: "I"},
	{ID: "I.5", Content: "5. Thi học thuật cấp Ngoài trường (Tham gia: 4đ, Giải: 5-8đ)", Max: 8, Parent: "I"},
	{ID: "I.6", Content: "6. Báo cáo khoa học cấp Khoa (Đạt: 3-8đ)", Max: 8, Parent: "I"},
	{ID: "I.7", Content: "7. NCKH cấp Trường (Đạt: 5-10đ)", Max: 10, Parent: "I"},
	{ID: "I.8", Content: "8. Viết bài báo khoa học (5-8đ)", Max: 8, Parent: "I"},
	{ID: "I.9", Content: "9. Thi khởi nghiệp cấp Trường (Tham gia: 3đ, Giải: 4-7đ)", Max: 7, Parent: "I"},
	{ID: "I.10", Content: "10. Thi khởi nghiệp Ngoài trường (Tham gia: 4đ, Giải: 5-8đ)", Max: 8, Parent: "I"},
	{ID: "I.11", Content: "11. Thành viên CLB học thuật (2đ/HK)", Max: 2, Parent: "I"},
	{ID: "I.12", Content: "12. Các hoạt động học thuật khác", Max: 5, Parent: "I"},

	// Phần II: ý thức nội quy
	{ID: "II", Content: "II. Đánh giá về ý thức chấp hành nội quy, quy chế", Max: 25},
	{ID: "II.1", Content: "1. Ý thức, thái độ trong học tập (Đi học đầy đủ, đúng giờ)", Max: 5, Parent: "II"},
	{ID: "II.2", Content: "2. Chấp hành tốt nội quy, quy chế Nhà trường", Max: 5, Parent: "II"},
	{ID: "II.3", Content: "3. Thực hiện tốt quy chế thi, kiểm tra", Max: 5, Parent: "II"},
	{ID: "II.4", Content: "4. Chấp hành quy định thư viện", Max: 5, Parent: "II"},
	{ID: "II.5", Content: "5. Bảo vệ tài sản, phòng học", Max: 5, Parent: "II"},
	{ID: "II.6", Content: "6. Thực hiện đăng ký ngoại trú", Max: 5, Parent: "II"},
	{ID: "II.7", Content: "7. Mặc đồng phục đúng quy định", Max: 5, Parent: "II"},
	{ID: "II.8", Content: "8. Tham gia sinh hoạt lớp với CVHT", Max: 5, Parent: "II"},

	// Phần III: hoạt động chính trị - xã hội
	{ID: "III", Content: "III. Đánh giá về ý thức tham gia hoạt động CT-XH, VH-VN-TT", Max: 20},
	{ID: "III.1", Content: "1. Hoạt động bắt buộc do Khoa/Trường tổ chức (3đ/lần)", Max: 10, Parent: "III"},
	{ID: "III.2", Content: "2. Đại hội Chi đoàn/Chi hội, sinh hoạt Chi đoàn (3đ/lần)", Max: 10, Parent: "III"},
	{ID: "III.3", Content: "3. Báo cáo chuyên đề chính trị trực tiếp/trực tuyến", Max: 10, Parent: "III"},
	{ID: "III.4", Content: "4. Hoạt động ngoại khóa Khoa/Trường/CLB (1-7đ)", Max: 7, Parent: "III"},
	{ID: "III.5", Content: "5. Hoạt động ngoại khóa cấp Thành phố trở lên (1-8đ)", Max: 8, Parent: "III"},
	{ID: "III.6", Content: "6. Được kết nạp Đoàn", Max: 5, Parent: "III"},
	{ID: "III.7", Content: "7. Được kết nạp Đảng", Max: 8, Parent: "III"},
	{ID: "III.8", Content: "8. Hoạt động điều động của Đoàn/Hội (2-4đ)", Max: 10, Parent: "III"},
	{ID: "III.9", Content: "9. Thành viên các CLB/Đội/Nhóm (2đ/HK)", Max: 2, Parent: "III"},
	{ID: "III.10", Content: "10. Học tập các bài lý luận chính trị (4đ/lần)", Max: 4, Parent: "III"},
	{ID: "III.11", Content: "11. Hoạt động đền ơn đáp nghĩa, thắp nến tri ân (3đ/lần)", Max: 10, Parent: "III"},
	{ID: "III.12", Content: "12. Lao động tình nguyện tại Trường (3đ/lần)", Max: 10, Parent: "III"},
	{ID: "III.13", Content: "13. Khen thưởng trong phong trào (5-7đ)", Max: 7, Parent: "III"},
	{ID: "III.14", Content: "14. Tập thể được khen thưởng (1đ/lần)", Max: 2, Parent: "III"},
	{ID: "III.15", Content: "15. Các hoạt động khác (1-3đ)", Max: 5, Parent: "III"},

	// Phần IV: công dân & cộng đồng
	{ID: "IV", Content: "IV. Đánh giá về ý thức công dân trong quan hệ cộng đồng", Max: 25},
	{ID: "IV.1", Content: "1. Chấp hành luật pháp, tuyên truyền pháp luật (10đ)", Max: 10, Parent: "IV"},
	{ID: "IV.2", Content: "2. Tương thân tương ái, giúp đỡ người khó khăn (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.3", Content: "3. Được biểu dương người tốt việc tốt (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.4", Content: "4. Giao lưu các CLB/Đội/Nhóm (3-5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.5", Content: "5. Chương trình Tư vấn tuyển sinh (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.6", Content: "6. Công tác nhập học (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.7", Content: "7. Công tác khám sức khỏe đầu khóa (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.8", Content: "8. Công tác Ngày hội việc làm (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.9", Content: "9. Công tác Lễ tốt nghiệp (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.10", Content: "10. Công tác kiểm tra hồ sơ (5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.11", Content: "11. Phiên giao dịch việc làm (1-3đ)", Max: 5, Parent: "IV"},
	{ID: "IV.12", Content: "12. Hiến máu tình nguyện (10đ/lần)", Max: 10, Parent: "IV"},
	{ID: "IV.13", Content: "13. Xuân tình nguyện (4-5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.14", Content: "14. Mùa hè xanh (5-7đ)", Max: 7, Parent: "IV"},
	{ID: "IV.15", Content: "15. Ngày Chủ nhật xanh (3-5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.16", Content: "16. Thứ Bảy tình nguyện (3-5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.17", Content: "17. Chào đón tân sinh viên (3-5đ)", Max: 5, Parent: "IV"},
	{ID: "IV.18", Content: "18. Hoạt động PTBV, Trách nhiệm xã hội (1-3đ)", Max: 5, Parent: "IV"},

	// Phần V: cán bộ lớp & thành tích đặc biệt
	{ID: "V", Content: "V. Tham gia công tác cán bộ lớp, thành tích đặc biệt", Max: 10},
	{ID: "V.1", Content: "1. Tham gia tích cực phong trào Lớp/Đoàn/Hội (3đ)", Max: 3, Parent: "V"},
	{ID: "V.2", Content: "2. Cán bộ Lớp/Đoàn/Hội hoàn thành nhiệm vụ (3-5đ)", Max: 5, Parent: "V"},
	{ID: "V.3", Content: "3. Đạt giải về học tập, NCKH (3-6đ)", Max: 6, Parent: "V"},
	{ID: "V.4", Content: "4. Bằng khen UBND Tỉnh/Thành phố (5đ)", Max: 5, Parent: "V"},
	{ID: "V.5", Content: "5. Sinh viên 5 tốt cấp Trường/Đoàn viên tiêu biểu (6đ)", Max: 6, Parent: "V"},
	{ID: "V.6", Content: "6. Sinh viên 5 tốt cấp Thành/Trung ương (10đ)", Max: 10, Parent: "V"},
	{ID: "V.7", Content: "7. Đạt danh hiệu Đoàn viên ưu tú (6đ)", Max: 6, Parent: "V"},
	{ID: "V.8", Content: "8. Giấy khen tập thể của Đoàn (2đ)", Max: 2, Parent: "V"},
}
