package emit

// Preamble declares the controller's base types, constants and C library
// subset ahead of the generated declarations.
const Preamble = `#pragma once

#include <endian.h>
#include <stddef.h>
#include <stdint.h>
#include <ctype.h>
#include <locale.h>
#include <math.h>
#include <stdarg.h>
#include <stdio.h>
#include <string.h>
#define CONST const
#define UNIT UINT
#define ERROR -1
#define OK 0
#define NG 1
#define TRUE 1
#define FALSE 0
#define ON 1
#define OFF 0
#define AF_INET 2
#define SOCK_STREAM 1
#define INADDR_ANY 0
#define SOMAXCONN 5
#define TCP_NODELAY 1
#define TRQ_NEWTON_METER 1
#define MP_INC_PULSE_DTYPE 0x80
#define MP_INTERPOLATION_CLK 1
#define FOREVER while(1)
#define MP_GRP_NUM 32
#define MP_GRP_AXES_NUM 8
#define MAX_TOOL_NAME 8
#define S_VAR_SIZE 32
#define TRANS_FILE_LEN (32 + 1 + 3)
#define MP_LIST_DATA_SIZE 1000 // Size of work area used for reading
#define OFFLINE_SYSTEM_VERSION_SIZE 22
#define TID_SELF 0
#define MP_STACK_SIZE 0
#define mpExitUsrRoot _mpExitUsrRoot()
#define mpDeleteSelf mpDeleteTask(TID_SELF)
typedef char CHAR;
typedef unsigned char UCHAR;
typedef short SHORT;
typedef unsigned short USHORT;
typedef int INT;
typedef int BOOL;
typedef unsigned int UINT;
typedef long LONG;
typedef unsigned long ULONG;
typedef int8_t INT8;
typedef int16_t INT16;
typedef int32_t INT32;
typedef int64_t INT64;
typedef uint8_t UINT8;
typedef uint16_t UINT16;
typedef uint32_t UINT32;
typedef uint64_t UINT64;
typedef UINT socklen_t;
typedef INT MP_WDG_HANDLE;
typedef INT MP_SVS_HANDLE;
typedef INT STATUS;
typedef ULONG CTRLG_T;
typedef ULONG EXEJT_T;
typedef ULONG TIME;
typedef LONG fd_mask;
typedef void *SEM_ID;
typedef void *MSG_Q_ID;
typedef enum {
    SEM_Q_FIFO,
    SEM_Q_PRIORITY
} SEM_B_OPTIONS;
typedef enum {
    SEM_EMPTY,
    SEM_FULL
} SEM_B_STATE;
typedef enum {
    MP_PRI_IO_CLK_TAKE,
    MP_PRI_IP_CLK_TAKE,
    MP_PRI_TIME_CRITICAL,
    MP_PRI_TIME_NORMAL
} MP_PRIORITY;
typedef enum {
    /** Pulse Not used */
    MP_PULSE_TYPE,
    /** Angle Not used */
    MP_ANGLE_TYPE,
    /** Base coordinate system Not used */
    MP_BASE_TYPE,
    /** Robot System Not used */
    MP_ROBOT_TYPE,
    /** User coordinate system */
    MP_USER_TYPE
} MP_COORD_TYPE;
typedef enum {
    MP_R1_GID,
    MP_R2_GID,
    MP_R3_GID,
    MP_R4_GID,
    MP_R5_GID,
    MP_R6_GID,
    MP_R7_GID,
    MP_R8_GID,
    MP_B1_GID,
    MP_B2_GID,
    MP_B3_GID,
    MP_B4_GID,
    MP_B5_GID,
    MP_B6_GID,
    MP_B7_GID,
    MP_B8_GID,
    MP_S1_GID,
    MP_S2_GID,
    MP_S3_GID,
    MP_S4_GID,
    MP_S5_GID,
    MP_S6_GID,
    MP_S7_GID,
    MP_S8_GID,
    MP_S9_GID,
    MP_S10_GID,
    MP_S11_GID,
    MP_S12_GID,
    MP_S13_GID,
    MP_S14_GID,
    MP_S15_GID,
    MP_S16_GID,
    MP_S17_GID,
    MP_S18_GID,
    MP_S19_GID,
    MP_S20_GID,
    MP_S21_GID,
    MP_S22_GID,
    MP_S23_GID,
    MP_S24_GID
} MP_GRP_ID_TYPE;
typedef enum {
    mpRsDataBit_7,
    mpRsDataBit_8
} MP_RS_DATA_BIT;
typedef enum {
    mpRsStopBit_one,
    mpRsStopBit_1point5,
    mpRsStopBit_two
} MP_RS_STOP_BIT;
typedef enum {
    mpRsParity_none,
    mpRsParity_odd,
    mpRsParity_even
} MP_RS_PARITY;
typedef enum {
    mpRsBaudrate_150,
    mpRsBaudrate_300,
    mpRsBaudrate_600,
    mpRsBaudrate_1200,
    mpRsBaudrate_2400,
    mpRsBaudrate_4800,
    mpRsBaudrate_9600,
    mpRsBaudrate_19200
} MP_RS_BAUDRATE;
#define FD_SETSIZE 2048
#define NFDBITS 32
#define howmany(x, y) ((unsigned int)(((x) + ((y)-1))) / (unsigned int)(y))
typedef struct fd_set {
    fd_mask fds_bits[howmany(FD_SETSIZE, NFDBITS)];
} fd_set;
#define FD_ZERO(p) memset((char *)(p), '\0', sizeof(*(p)))
#define FD_SET(n, p) ((p)->fds_bits[(n) / NFDBITS] |= (1 << ((n) % NFDBITS)))
#define FD_ISSET(n, p) ((p)->fds_bits[(n) / NFDBITS] & (1 << ((n) % NFDBITS)))
typedef struct {
    /** S_VAR_SIZE (32 characters)+null character\0 */
    UCHAR ucValue[S_VAR_SIZE+1];
    UCHAR reserved[3];
} MP_SVAR_RECV_INFO;
typedef struct {
    /** Variable type (Only MP_RESTYPE_VAR_S is valid) */
    USHORT usType;
    /** Variable index */
    USHORT usIndex;
    /** S_VAR_SIZE (32 characters)+null character\0 */
    UCHAR ucValue[S_VAR_SIZE + 1];
    CHAR reserved[3];
} MP_SVAR_SEND_INFO;
typedef struct {
    /** The array storing the character string of the written file */
    UCHAR cFileName[TRANS_FILE_LEN + 1];
    CHAR reserved[3];
} MP_FILE_NAME_SEND_DATA;
typedef struct {
    /** main command */
    int main_comm;
    /** sub command */
    int sub_comm;
    /** task number of job in execution (0-15) */
    int exe_tsk;
    /** application number of execution control group */
    int exe_apl;
    /** text command data sent by SKILLSND */
    char cmd[256];
    /** for future addition (reserved) */
    int usr_opt;
} SYS2MP_SENS_MSG;
typedef struct {
    /** control group */
    CTRLG_T ctrl_grp;
    /** shift data */
    LONG val[MP_GRP_AXES_NUM];
} MP_SHIFT_VALUE_DATA;
typedef struct {
    MP_RS_DATA_BIT dataBit;
    MP_RS_STOP_BIT stopBit;
    MP_RS_PARITY parity;
    MP_RS_BAUDRATE baudRate;
} MP_RS_CONFIG;
typedef struct {
    /** Error number */
    USHORT err_no;
    /** Always 1 with the normal end */
    USHORT uIsEndFlag;
    /** The number of read job names */
    USHORT uListDataNum;
    /** Work area used for reading */
    UCHAR cListData[MP_LIST_DATA_SIZE];
    CHAR reserved[2];
} MP_GET_JOBLIST_RSP_DATA;
typedef struct {
    long vj;
    long v;
    long vr;
} MP_SPEED;
typedef struct {
    /** XYZ position (microns) */
    long x, y, z;
    /** Wrist angle (unit: 0.0001 deg) */
    long rx, ry, rz;
    /** Elbow angle (unit: 0.0001 deg) */
    long ex1, ex2;
} MP_COORD;
struct timeval {
    /** second */
    long tv_sec;
    /** micro second */
    long tv_usec;
};
struct in_addr {
    ULONG s_addr;
};
struct sockaddr {
    UCHAR sa_len;
    UCHAR sa_family;
    CHAR sa_data[14];
};
struct sockaddr_in {
    UCHAR sin_len;
    UCHAR sin_family;
    USHORT sin_port;
    struct in_addr sin_addr;
    CHAR sin_zero[8];
};
struct stat {
    /** device ID number */
    unsigned long st_dev;
    /** file serial number */
    unsigned long st_ino;
    /** file mode (see below) */
    int st_mode;
    /** number of links to file */
    unsigned long st_nlink;
    /** user ID of file's owner */
    unsigned short st_uid;
    /** group ID of file's group */
    unsigned short st_gid;
    /** device ID, only if special file */
    unsigned long st_rdev;
    /** size of file, in bytes */
    long long st_size;
    /** time of last access */
    TIME st_atime;
    /** time of last modification */
    TIME st_mtime;
    /** time of last change of file status */
    TIME st_ctime;
    long st_blksize;
    long st_blocks;
    /** file attribute byte (dosFs only) */
    unsigned char st_attrib;
    /** reserved for future use */
    int reserved1;
    /** reserved for future use */
    int reserved2;
    /** reserved for future use */
    int reserved3;
    /** reserved for future use */
    int reserved4;
    /** reserved for future use */
    int reserved5;
    /** reserved for future use */
    int reserved6;
};

/* File mode (st_mode) bit masks */
#define S_IFMT   0xf000 // file type field
#define S_IFIFO  0x1000 // fifo
#define S_IFCHR  0x2000 // character special
#define S_IFDIR  0x4000 // directory
#define S_IFBLK  0x6000 // block special
#define S_IFREG  0x8000 // regular
#define S_IFLNK  0xa000 // symbolic link
#define S_IFSOCK 0xc000 // socket
typedef void (*FUNCPTR)(int, int, int, int, int, int, int, int, int, int);
#define max(a,b) \
    ({ __typeof__ (a) _a = (a); \
    __typeof__ (b) _b = (b); \
    _a > _b ? _a : _b; })
#define min(a,b) \
    ({ __typeof__ (a) _a = (a); \
    __typeof__ (b) _b = (b); \
    _a < _b ? _a : _b; })
void _mpExitUsrRoot();
int abs(int x);
void mpFree(void *ptr);`
