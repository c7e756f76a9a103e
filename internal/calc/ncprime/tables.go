package ncprime

// Fine-grained bearing factor Nc' by cone apex angle (deg). Each row is
// (strength-gradient class, embedment D/2R) followed by Nc' at the roughness
// values in alphaAxis. Roughness 1.0 is not tabulated and clamps to 0.8.
var tables = map[float64][]row{
	30: {
		{0, 0.0, [5]float64{5.51, 6.38, 7.22, 8.03, 8.78}},
		{0, 0.2, [5]float64{5.70, 6.56, 7.40, 8.20, 8.95}},
		{0, 0.5, [5]float64{5.94, 6.80, 7.63, 8.43, 9.18}},
		{0, 1.0, [5]float64{6.29, 7.14, 7.79, 8.76, 9.50}},
		{0, 2.0, [5]float64{6.85, 7.70, 8.51, 9.29, 10.03}},
		{0, 5.0, [5]float64{7.98, 8.81, 9.61, 10.38, 11.10}},
		{1, 0.0, [5]float64{9.02, 10.46, 11.84, 13.19, 14.46}},
		{1, 0.2, [5]float64{8.89, 10.27, 11.61, 12.90, 14.13}},
		{1, 0.5, [5]float64{8.73, 10.05, 11.32, 12.55, 13.72}},
		{1, 1.0, [5]float64{8.55, 9.78, 10.98, 12.14, 13.24}},
		{1, 2.0, [5]float64{8.38, 9.51, 10.61, 11.68, 12.68}},
		{1, 5.0, [5]float64{8.39, 9.39, 10.37, 11.30, 12.19}},
		{2, 0.0, [5]float64{12.51, 14.51, 16.44, 18.31, 20.10}},
		{2, 0.2, [5]float64{11.53, 13.33, 15.08, 16.79, 18.40}},
		{2, 0.5, [5]float64{10.58, 12.19, 13.76, 15.27, 16.72}},
		{2, 1.0, [5]float64{9.67, 11.09, 12.47, 13.80, 15.08}},
		{2, 2.0, [5]float64{8.87, 10.10, 11.30, 12.45, 13.54}},
		{2, 5.0, [5]float64{8.44, 9.48, 10.18, 11.44, 12.35}},
		{3, 0.0, [5]float64{15.98, 18.56, 21.03, 23.42, 25.71}},
		{3, 0.2, [5]float64{13.76, 15.92, 18.02, 20.05, 22.00}},
		{3, 0.5, [5]float64{11.89, 13.72, 15.49, 17.21, 18.85}},
		{3, 1.0, [5]float64{10.33, 11.87, 13.36, 14.80, 16.18}},
		{3, 2.0, [5]float64{9.11, 10.39, 11.64, 12.83, 13.98}},
		{3, 5.0, [5]float64{8.46, 9.51, 10.52, 11.49, 12.42}},
		{4, 0.0, [5]float64{19.46, 22.57, 25.62, 28.52, 31.32}},
		{4, 0.2, [5]float64{15.68, 18.14, 20.54, 22.86, 25.08}},
		{4, 0.5, [5]float64{12.87, 14.86, 16.79, 18.66, 20.44}},
		{4, 1.0, [5]float64{10.77, 12.38, 13.96, 15.47, 16.91}},
		{4, 2.0, [5]float64{9.26, 10.57, 11.84, 13.06, 14.23}},
		{4, 5.0, [5]float64{8.47, 9.52, 10.54, 11.52, 12.46}},
		{5, 0.0, [5]float64{22.94, 26.61, 30.20, 33.63, 36.92}},
		{5, 0.2, [5]float64{17.33, 20.06, 22.72, 25.29, 27.75}},
		{5, 0.5, [5]float64{13.64, 15.75, 17.80, 19.78, 21.68}},
		{5, 1.0, [5]float64{11.08, 12.77, 14.38, 15.94, 17.43}},
		{5, 2.0, [5]float64{9.35, 10.68, 11.97, 13.21, 14.40}},
		{5, 5.0, [5]float64{8.47, 9.53, 10.56, 11.55, 12.48}},
	},
	60: {
		{0, 0.0, [5]float64{4.96, 5.45, 5.90, 6.32, 6.69}},
		{0, 0.2, [5]float64{5.19, 5.67, 6.12, 6.53, 6.90}},
		{0, 0.5, [5]float64{5.50, 5.96, 6.40, 6.81, 7.18}},
		{0, 1.0, [5]float64{5.90, 6.37, 6.81, 7.21, 7.57}},
		{0, 2.0, [5]float64{6.55, 7.01, 7.43, 7.84, 8.18}},
		{0, 5.0, [5]float64{7.81, 8.25, 8.66, 9.05, 9.39}},
		{1, 0.0, [5]float64{6.51, 7.15, 7.77, 8.34, 8.87}},
		{1, 0.2, [5]float64{6.59, 7.23, 7.83, 8.38, 8.89}},
		{1, 0.5, [5]float64{6.70, 7.30, 7.88, 8.42, 8.91}},
		{1, 1.0, [5]float64{6.84, 7.41, 7.96, 8.47, 8.94}},
		{1, 2.0, [5]float64{7.05, 7.58, 8.12, 8.59, 9.03}},
		{1, 5.0, [5]float64{7.55, 8.08, 8.54, 8.98, 9.39}},
		{2, 0.0, [5]float64{8.02, 8.84, 9.60, 10.32, 10.99}},
		{2, 0.2, [5]float64{7.73, 8.49, 9.21, 9.88, 10.50}},
		{2, 0.5, [5]float64{7.50, 8.18, 8.84, 9.46, 10.03}},
		{2, 1.0, [5]float64{7.29, 7.91, 8.53, 9.09, 9.61}},
		{2, 2.0, [5]float64{7.20, 7.76, 8.33, 8.83, 9.30}},
		{2, 5.0, [5]float64{7.49, 8.03, 8.50, 8.95, 9.37}},
		{3, 0.0, [5]float64{9.54, 10.50, 11.42, 12.29, 13.10}},
		{3, 0.2, [5]float64{8.70, 9.56, 10.38, 11.14, 11.85}},
		{3, 0.5, [5]float64{8.03, 8.80, 9.53, 10.20, 10.82}},
		{3, 1.0, [5]float64{7.56, 8.21, 8.86, 9.45, 10.00}},
		{3, 2.0, [5]float64{7.27, 7.85, 8.44, 8.94, 9.43}},
		{3, 5.0, [5]float64{7.47, 8.01, 8.49, 8.94, 9.36}},
		{4, 0.0, [5]float64{11.02, 12.16, 13.24, 14.26, 15.18}},
		{4, 0.2, [5]float64{9.52, 10.48, 11.38, 12.22, 13.00}},
		{4, 0.5, [5]float64{8.44, 9.26, 10.04, 10.75, 11.41}},
		{4, 1.0, [5]float64{7.74, 8.41, 9.08, 9.69, 10.26}},
		{4, 2.0, [5]float64{7.31, 7.90, 8.49, 9.01, 9.51}},
		{4, 5.0, [5]float64{7.45, 8.00, 8.48, 8.94, 9.35}},
		{5, 0.0, [5]float64{12.52, 13.83, 15.06, 16.20, 17.26}},
		{5, 0.2, [5]float64{10.23, 11.26, 12.25, 13.15, 13.99}},
		{5, 0.5, [5]float64{8.78, 9.63, 10.43, 11.17, 11.87}},
		{5, 1.0, [5]float64{7.84, 8.55, 9.24, 9.86, 10.45}},
		{5, 2.0, [5]float64{7.32, 7.94, 8.53, 9.06, 9.56}},
		{5, 5.0, [5]float64{7.44, 7.99, 8.47, 8.93, 9.35}},
	},
	90: {
		{0, 0.0, [5]float64{5.02, 5.36, 5.67, 5.95, 6.17}},
		{0, 0.2, [5]float64{5.28, 5.61, 5.91, 6.18, 6.41}},
		{0, 0.5, [5]float64{5.59, 5.93, 6.23, 6.49, 6.71}},
		{0, 1.0, [5]float64{6.03, 6.36, 6.66, 6.92, 7.14}},
		{0, 2.0, [5]float64{6.71, 7.05, 7.32, 7.58, 7.79}},
		{0, 5.0, [5]float64{8.03, 8.32, 8.60, 8.86, 9.05}},
		{1, 0.0, [5]float64{6.05, 6.47, 6.87, 7.22, 7.53}},
		{1, 0.2, [5]float64{6.21, 6.62, 7.00, 7.36, 7.65}},
		{1, 0.5, [5]float64{6.38, 6.79, 7.16, 7.50, 7.79}},
		{1, 1.0, [5]float64{6.61, 6.99, 7.36, 7.68, 7.97}},
		{1, 2.0, [5]float64{6.93, 7.30, 7.64, 7.95, 8.21}},
		{1, 5.0, [5]float64{7.57, 7.94, 8.25, 8.53, 8.78}},
		{2, 0.0, [5]float64{7.03, 7.54, 8.01, 8.45, 8.82}},
		{2, 0.2, [5]float64{6.94, 7.43, 7.88, 8.28, 8.65}},
		{2, 0.5, [5]float64{6.88, 7.35, 7.76, 8.14, 8.46}},
		{2, 1.0, [5]float64{6.88, 7.29, 7.69, 8.03, 8.35}},
		{2, 2.0, [5]float64{6.99, 7.37, 7.73, 8.06, 8.33}},
		{2, 5.0, [5]float64{7.49, 7.86, 8.18, 8.47, 8.72}},
		{3, 0.0, [5]float64{8.00, 8.59, 9.14, 9.65, 10.08}},
		{3, 0.2, [5]float64{7.57, 8.10, 8.60, 9.05, 9.45}},
		{3, 0.5, [5]float64{7.24, 7.73, 8.17, 8.59, 8.94}},
		{3, 1.0, [5]float64{7.04, 7.47, 7.88, 8.24, 8.57}},
		{3, 2.0, [5]float64{7.02, 7.41, 7.78, 8.11, 8.39}},
		{3, 5.0, [5]float64{7.46, 7.83, 8.15, 8.44, 8.46}},
		{4, 0.0, [5]float64{8.96, 9.64, 10.25, 10.82, 11.33}},
		{4, 0.2, [5]float64{8.11, 8.68, 9.22, 9.70, 10.14}},
		{4, 0.5, [5]float64{7.50, 8.01, 8.48, 8.92, 9.29}},
		{4, 1.0, [5]float64{7.15, 7.58, 8.01, 8.38, 8.72}},
		{4, 2.0, [5]float64{7.03, 7.43, 7.80, 8.14, 8.42}},
		{4, 5.0, [5]float64{7.44, 7.81, 8.13, 8.42, 8.67}},
		{5, 0.0, [5]float64{9.93, 10.66, 11.35, 12.00, 12.56}},
		{5, 0.2, [5]float64{8.55, 9.17, 9.74, 10.26, 10.75}},
		{5, 0.5, [5]float64{7.71, 8.24, 8.72, 9.17, 9.57}},
		{5, 1.0, [5]float64{7.22, 7.67, 8.09, 8.47, 8.82}},
		{5, 2.0, [5]float64{7.04, 7.44, 7.82, 8.16, 8.44}},
		{5, 5.0, [5]float64{7.42, 7.80, 8.12, 8.41, 8.66}},
	},
	120: {
		{0, 0.0, [5]float64{5.25, 5.51, 5.73, 5.92, 6.05}},
		{0, 0.2, [5]float64{5.52, 5.77, 5.99, 6.17, 6.30}},
		{0, 0.5, [5]float64{5.85, 6.10, 6.31, 6.49, 6.62}},
		{0, 1.0, [5]float64{6.31, 6.55, 6.76, 6.93, 7.05}},
		{0, 2.0, [5]float64{7.01, 7.24, 7.44, 7.61, 7.72}},
		{0, 5.0, [5]float64{8.32, 8.55, 8.75, 8.90, 8.99}},
		{1, 0.0, [5]float64{6.04, 6.36, 6.65, 6.89, 7.09}},
		{1, 0.2, [5]float64{6.24, 6.55, 6.82, 7.07, 7.26}},
		{1, 0.5, [5]float64{6.45, 6.76, 7.02, 7.26, 7.45}},
		{1, 1.0, [5]float64{6.72, 7.01, 7.27, 7.48, 7.66}},
		{1, 2.0, [5]float64{7.10, 7.37, 7.61, 7.82, 7.97}},
		{1, 5.0, [5]float64{7.82, 8.08, 8.29, 8.49, 8.61}},
		{2, 0.0, [5]float64{6.79, 7.16, 7.50, 7.80, 8.04}},
		{2, 0.2, [5]float64{6.80, 7.16, 7.47, 7.75, 7.97}},
		{2, 0.5, [5]float64{6.83, 7.17, 7.46, 7.72, 7.94}},
		{2, 1.0, [5]float64{6.91, 7.22, 7.49, 7.74, 7.92}},
		{2, 2.0, [5]float64{7.12, 7.40, 7.65, 7.87, 8.03}},
		{2, 5.0, [5]float64{7.72, 7.99, 8.21, 8.41, 8.53}},
		{3, 0.0, [5]float64{7.51, 7.93, 8.31, 8.66, 8.93}},
		{3, 0.2, [5]float64{7.27, 7.65, 8.00, 8.31, 8.57}},
		{3, 0.5, [5]float64{7.09, 7.45, 7.76, 8.05, 8.27}},
		{3, 1.0, [5]float64{7.02, 7.34, 7.63, 7.88, 8.08}},
		{3, 2.0, [5]float64{7.11, 7.41, 7.67, 7.89, 8.06}},
		{3, 5.0, [5]float64{7.68, 7.95, 8.17, 8.38, 8.51}},
		{4, 0.0, [5]float64{8.22, 8.69, 9.11, 9.49, 9.81}},
		{4, 0.2, [5]float64{7.66, 8.07, 8.44, 8.77, 9.03}},
		{4, 0.5, [5]float64{7.28, 7.65, 7.98, 8.27, 8.53}},
		{4, 1.0, [5]float64{7.08, 7.42, 7.71, 7.97, 8.18}},
		{4, 2.0, [5]float64{7.12, 7.41, 7.68, 7.90, 8.08}},
		{4, 5.0, [5]float64{7.66, 7.93, 8.15, 8.36, 8.49}},
		{5, 0.0, [5]float64{8.91, 9.43, 9.89, 10.31, 10.67}},
		{5, 0.2, [5]float64{7.99, 8.43, 8.82, 9.18, 9.95}},
		{5, 0.5, [5]float64{7.43, 7.81, 8.15, 8.45, 8.72}},
		{5, 1.0, [5]float64{7.13, 7.47, 7.77, 8.03, 8.25}},
		{5, 2.0, [5]float64{7.12, 7.42, 7.69, 7.91, 8.09}},
		{5, 5.0, [5]float64{7.64, 7.91, 8.14, 8.34, 8.48}},
	},
	150: {
		{0, 0.0, [5]float64{5.55, 5.74, 5.89, 6.01, 6.05}},
		{0, 0.2, [5]float64{5.82, 6.00, 6.16, 6.26, 6.30}},
		{0, 0.5, [5]float64{6.16, 6.34, 6.49, 6.59, 6.61}},
		{0, 1.0, [5]float64{6.62, 6.80, 6.94, 7.03, 7.05}},
		{0, 2.0, [5]float64{7.32, 7.49, 7.62, 7.71, 7.72}},
		{0, 5.0, [5]float64{8.65, 8.81, 8.93, 8.99, 8.99}},
		{1, 0.0, [5]float64{6.22, 6.46, 6.67, 6.84, 6.97}},
		{1, 0.2, [5]float64{6.43, 6.67, 6.87, 7.04, 7.15}},
		{1, 0.5, [5]float64{6.67, 6.90, 7.09, 7.25, 7.36}},
		{1, 1.0, [5]float64{6.96, 7.18, 7.36, 7.51, 7.60}},
		{1, 2.0, [5]float64{7.36, 7.57, 7.73, 7.86, 7.95}},
		{1, 5.0, [5]float64{8.12, 8.31, 8.44, 8.56, 8.61}},
		{2, 0.0, [5]float64{6.82, 7.11, 7.35, 7.57, 7.73}},
		{2, 0.2, [5]float64{6.90, 7.16, 7.40, 7.59, 7.74}},
		{2, 0.5, [5]float64{6.98, 7.23, 7.45, 7.63, 7.76}},
		{2, 1.0, [5]float64{7.10, 7.34, 7.54, 7.70, 7.82}},
		{2, 2.0, [5]float64{7.35, 7.57, 7.74, 7.89, 7.99}},
		{2, 5.0, [5]float64{8.01, 8.21, 8.35, 8.47, 8.53}},
		{3, 0.0, [5]float64{7.40, 7.72, 7.98, 8.24, 8.43}},
		{3, 0.2, [5]float64{7.27, 7.56, 7.81, 8.03, 8.21}},
		{3, 0.5, [5]float64{7.18, 7.45, 7.68, 7.88, 8.03}},
		{3, 1.0, [5]float64{7.18, 7.43, 7.63, 7.81, 7.94}},
		{3, 2.0, [5]float64{7.35, 7.57, 7.75, 7.90, 8.00}},
		{3, 5.0, [5]float64{7.97, 8.16, 8.31, 8.43, 8.49}},
		{4, 0.0, [5]float64{7.94, 8.30, 8.58, 8.88, 9.10}},
		{4, 0.2, [5]float64{7.58, 7.89, 8.16, 8.40, 8.59}},
		{4, 0.5, [5]float64{7.34, 7.62, 7.86, 8.07, 8.23}},
		{4, 1.0, [5]float64{7.23, 7.49, 7.70, 7.88, 8.01}},
		{4, 2.0, [5]float64{7.34, 7.56, 7.75, 7.90, 8.00}},
		{4, 5.0, [5]float64{7.94, 8.13, 8.29, 8.41, 8.47}},
		{5, 0.0, [5]float64{8.48, 8.86, 9.19, 9.48, 9.74}},
		{5, 0.2, [5]float64{7.83, 8.16, 8.44, 8.69, 8.90}},
		{5, 0.5, [5]float64{7.45, 7.74, 7.99, 8.20, 8.37}},
		{5, 1.0, [5]float64{7.27, 7.53, 7.74, 7.93, 8.07}},
		{5, 2.0, [5]float64{7.34, 7.56, 7.75, 7.91, 8.01}},
		{5, 5.0, [5]float64{7.93, 8.12, 8.27, 8.40, 8.46}},
	},
	180: {
		{0, 0.0, [5]float64{5.86, 5.97, 6.03, 6.05, 6.05}},
		{0, 0.2, [5]float64{6.13, 6.24, 6.29, 6.30, 6.30}},
		{0, 0.5, [5]float64{6.47, 6.57, 6.61, 6.61, 6.61}},
		{0, 1.0, [5]float64{6.93, 7.02, 7.05, 7.05, 7.05}},
		{0, 2.0, [5]float64{7.63, 7.70, 7.71, 7.71, 7.71}},
		{0, 5.0, [5]float64{8.94, 8.99, 8.99, 8.99, 8.99}},
		{1, 0.0, [5]float64{6.47, 6.65, 6.79, 6.90, 6.95}},
		{1, 0.2, [5]float64{6.69, 6.87, 7.00, 7.10, 7.14}},
		{1, 0.5, [5]float64{6.94, 7.11, 7.23, 7.32, 7.35}},
		{1, 1.0, [5]float64{7.24, 7.39, 7.51, 7.58, 7.60}},
		{1, 2.0, [5]float64{7.64, 7.79, 7.88, 7.93, 7.94}},
		{1, 5.0, [5]float64{8.32, 8.52, 8.60, 8.61, 8.61}},
		{2, 0.0, [5]float64{6.98, 7.20, 7.39, 7.53, 7.63}},
		{2, 0.2, [5]float64{7.08, 7.30, 7.46, 7.59, 7.68}},
		{2, 0.5, [5]float64{7.20, 7.39, 7.55, 7.66, 7.72}},
		{2, 1.0, [5]float64{7.36, 7.53, 7.67, 7.76, 7.80}},
		{2, 2.0, [5]float64{7.63, 7.78, 7.90, 7.96, 7.98}},
		{2, 5.0, [5]float64{8.27, 8.43, 8.50, 8.53, 8.53}},
		{3, 0.0, [5]float64{7.45, 7.69, 7.91, 8.08, 8.21}},
		{3, 0.2, [5]float64{7.40, 7.62, 7.81, 7.96, 8.07}},
		{3, 0.5, [5]float64{7.37, 7.58, 7.75, 7.88, 7.96}},
		{3, 1.0, [5]float64{7.42, 7.61, 7.75, 7.86, 7.91}},
		{3, 2.0, [5]float64{7.62, 7.78, 7.90, 7.97, 7.99}},
		{3, 5.0, [5]float64{8.23, 8.38, 8.46, 8.49, 8.49}},
		{4, 0.0, [5]float64{7.87, 8.15, 8.38, 8.58, 8.73}},
		{4, 0.2, [5]float64{7.64, 7.89, 8.09, 8.26, 8.39}},
		{4, 0.5, [5]float64{7.50, 7.71, 7.89, 8.03, 8.13}},
		{4, 1.0, [5]float64{7.46, 7.65, 7.80, 7.92, 7.98}},
		{4, 2.0, [5]float64{7.61, 7.77, 7.89, 7.97, 8.00}},
		{4, 5.0, [5]float64{8.19, 8.36, 8.44, 8.47, 8.47}},
		{5, 0.0, [5]float64{8.27, 8.57, 8.83, 9.05, 9.23}},
		{5, 0.2, [5]float64{7.85, 8.10, 8.32, 8.50, 8.64}},
		{5, 0.5, [5]float64{7.59, 7.81, 8.00, 8.15, 8.25}},
		{5, 1.0, [5]float64{7.49, 7.68, 7.84, 7.96, 8.02}},
		{5, 2.0, [5]float64{7.60, 7.77, 7.89, 7.97, 8.00}},
		{5, 5.0, [5]float64{8.18, 8.35, 8.43, 8.46, 8.46}},
	},
}
