/*
Package validation 설정 파일과 API 요청으로 들어오는 외부 입력값의 형식을 검증합니다.

주요 기능:

  - CORS Origin 및 호스트명 검증
  - 포트 번호 검증
  - 외부 API 엔드포인트 URL 검증
  - 데이터베이스 파일 경로 검증

모든 함수는 상태를 갖지 않으며 유효하지 않은 입력에 대해 원인을 담은 error를 반환합니다.
*/
package validation
